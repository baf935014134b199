package billing

import (
	"fmt"
	"time"
)

// GenerateInvoiceNumber numeración por mes: INV-YYMM-NNNN, con NNNN = count+1
// (count = facturas ya emitidas). Se ensancha más allá de 4 dígitos si hace falta.
func GenerateInvoiceNumber(now time.Time, count int) string {
	if count < 0 {
		count = 0
	}
	return fmt.Sprintf("INV-%s-%04d", now.Format("0601"), count+1)
}
