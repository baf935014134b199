package entity

// InvoiceItem línea de factura: datos capturados más los importes calculados.
type InvoiceItem struct {
	Description string
	Quantity    float64
	Rate        float64 // precio unitario sin impuestos
	GSTRate     float64 // porcentaje: 0, 5, 12, 18 o 28
	Amount      float64 // Quantity × Rate
	CGST        float64
	SGST        float64
	Total       float64
}
