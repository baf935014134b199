package entity

// Party datos de facturación del vendedor (negocio) o del comprador (cliente).
type Party struct {
	Name    string
	GSTIN   string // ya normalizado; vacío si no está registrado
	Address string
	City    string
	State   string
	Pincode string
	Phone   string
	Email   string
}

// StateCode devuelve los dos primeros dígitos del GSTIN (código de estado GST).
func (p *Party) StateCode() string {
	if p == nil || len(p.GSTIN) < 2 {
		return ""
	}
	return p.GSTIN[:2]
}
