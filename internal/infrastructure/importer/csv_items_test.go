package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/infrastructure/importer"
)

func TestReadItemsCSV_ConCabecera(t *testing.T) {
	in := "description,quantity,rate,gst_rate\nWidget,5,100,5\n\"Gadget, large\",2,\"1,250.50\",18%\n"
	items, err := importer.ReadItemsCSV(strings.NewReader(in), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, []dto.LineItemRequest{
		{Description: "Widget", Quantity: 5, Rate: 100, GSTRate: 5},
		{Description: "Gadget, large", Quantity: 2, Rate: 1250.5, GSTRate: 18},
	}, items)
}

func TestReadItemsCSV_SinCabeceraYConBOM(t *testing.T) {
	in := "\xef\xbb\xbfWidget,5,100,5\n\nBolt,10,2.5,12\n"
	items, err := importer.ReadItemsCSV(strings.NewReader(in), "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Widget", items[0].Description)
	assert.Equal(t, 12.0, items[1].GSTRate)
}

func TestReadItemsCSV_Latin1(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("Café molido,1,450,5\n")
	require.NoError(t, err)

	items, err := importer.ReadItemsCSV(bytes.NewReader([]byte(raw)), "windows-1252")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Café molido", items[0].Description)

	latin, err := charmap.ISO8859_1.NewEncoder().String("Señal,2,10,18\n")
	require.NoError(t, err)
	items, err = importer.ReadItemsCSV(strings.NewReader(latin), "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "Señal", items[0].Description)
}

func TestReadItemsCSV_Errores(t *testing.T) {
	_, err := importer.ReadItemsCSV(strings.NewReader("a,1,1,5\n"), "ebcdic")
	assert.ErrorIs(t, err, importer.ErrUnsupportedCharset)

	_, err = importer.ReadItemsCSV(strings.NewReader("description,quantity,rate,gst_rate\nWidget,5,100,5\nGadget,2,abc,18\n"), "utf-8")
	require.ErrorIs(t, err, importer.ErrInvalidRow)
	assert.Contains(t, err.Error(), "línea 3")
	assert.Contains(t, err.Error(), "rate")

	_, err = importer.ReadItemsCSV(strings.NewReader("Widget,5,100\n"), "utf-8")
	require.ErrorIs(t, err, importer.ErrInvalidRow)
	assert.Contains(t, err.Error(), "línea 1")
}

func TestReadItemsCSV_PrimeraFilaInvalida(t *testing.T) {
	items, err := importer.ReadItemsCSV(strings.NewReader("Widget,two,100,18\nBolt,3,10,5\n"), "")
	require.ErrorIs(t, err, importer.ErrInvalidRow)
	assert.Contains(t, err.Error(), "línea 1")
	assert.Contains(t, err.Error(), "quantity")
	assert.Nil(t, items)
}

func TestReadItemsCSV_CabeceraSinDistinguirMayusculas(t *testing.T) {
	in := " Description , QUANTITY,Rate,GST_Rate\nBolt,3,10,5\n"
	items, err := importer.ReadItemsCSV(strings.NewReader(in), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, []dto.LineItemRequest{
		{Description: "Bolt", Quantity: 3, Rate: 10, GSTRate: 5},
	}, items)
}

func TestReadItemsCSV_Vacio(t *testing.T) {
	items, err := importer.ReadItemsCSV(strings.NewReader(""), "utf-8")
	require.NoError(t, err)
	assert.Empty(t, items)
}
