// Package docs registra la especificación OpenAPI (swagger.json) en swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/gst/amount-in-words": {
            "get": {
                "description": "Rupias y paise con agrupación india (lakh, crore).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Importe en letras",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Importe >= 0 y < 1e15",
                        "name": "amount",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AmountInWordsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/gst/invoices/calculate": {
            "post": {
                "description": "Calcula cada línea en el orden recibido, agrega totales y devuelve el total en letras.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Calcular factura borrador",
                "parameters": [
                    {
                        "description": "items (mínimo 1), seller/buyer opcionales",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CalculateInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceCalculationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/gst/invoices/verify": {
            "post": {
                "description": "Recalcula líneas y totales y reporta diferencias a paise. valid=false no es un error HTTP.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Verificar importes guardados",
                "parameters": [
                    {
                        "description": "items con amount/cgst/sgst/total guardados y totals",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.VerifyInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.VerifyInvoiceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/gst/line-items/calculate": {
            "post": {
                "description": "Base = quantity × rate; CGST y SGST = la mitad de la tasa cada uno.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Calcular una línea",
                "parameters": [
                    {
                        "description": "quantity > 0, rate >= 0, gst_rate en 0/5/12/18/28",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LineItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LineItemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/gst/rates": {
            "get": {
                "description": "Tasas GST admitidas",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gst"
                ],
                "summary": "Tasas GST admitidas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.GSTRatesResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/gstin/{gstin}": {
            "get": {
                "description": "Formato, código de estado y dígito de control. Un GSTIN inválido responde 200 con valid=false.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "gstin"
                ],
                "summary": "Validar GSTIN",
                "parameters": [
                    {
                        "type": "string",
                        "description": "GSTIN de 15 caracteres",
                        "name": "gstin",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.GSTINResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.LineItemRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "gst_rate": {
                    "type": "number"
                },
                "quantity": {
                    "type": "number"
                },
                "rate": {
                    "type": "number"
                }
            }
        },
        "dto.PartyDTO": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "gstin": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "pincode": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                }
            }
        },
        "dto.CalculateInvoiceRequest": {
            "type": "object",
            "properties": {
                "buyer": {
                    "$ref": "#/definitions/dto.PartyDTO"
                },
                "date": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string"
                },
                "invoice_number": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LineItemRequest"
                    }
                },
                "notes": {
                    "type": "string"
                },
                "seller": {
                    "$ref": "#/definitions/dto.PartyDTO"
                },
                "sequence": {
                    "type": "integer"
                }
            }
        },
        "dto.StoredLineItem": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "cgst": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "gst_rate": {
                    "type": "number"
                },
                "quantity": {
                    "type": "number"
                },
                "rate": {
                    "type": "number"
                },
                "sgst": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "dto.TotalsDTO": {
            "type": "object",
            "properties": {
                "cgst_total": {
                    "type": "number"
                },
                "grand_total": {
                    "type": "number"
                },
                "sgst_total": {
                    "type": "number"
                },
                "subtotal": {
                    "type": "number"
                }
            }
        },
        "dto.VerifyInvoiceRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.StoredLineItem"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/dto.TotalsDTO"
                }
            }
        },
        "dto.RoundedTotalsDTO": {
            "type": "object",
            "properties": {
                "cgst_total": {
                    "type": "string",
                    "example": "1115"
                },
                "grand_total": {
                    "type": "string",
                    "example": "1115"
                },
                "sgst_total": {
                    "type": "string",
                    "example": "1115"
                },
                "subtotal": {
                    "type": "string",
                    "example": "1115"
                }
            }
        },
        "dto.FormattedTotalsDTO": {
            "type": "object",
            "properties": {
                "cgst_total": {
                    "type": "string"
                },
                "grand_total": {
                    "type": "string"
                },
                "sgst_total": {
                    "type": "string"
                },
                "subtotal": {
                    "type": "string"
                }
            }
        },
        "dto.LineAmountsRounded": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "1115"
                },
                "cgst": {
                    "type": "string",
                    "example": "1115"
                },
                "sgst": {
                    "type": "string",
                    "example": "1115"
                },
                "total": {
                    "type": "string",
                    "example": "1115"
                }
            }
        },
        "dto.LineAmountsFormatted": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "cgst": {
                    "type": "string"
                },
                "sgst": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "dto.LineItemResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "cgst": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "formatted": {
                    "$ref": "#/definitions/dto.LineAmountsFormatted"
                },
                "gst_rate": {
                    "type": "number"
                },
                "quantity": {
                    "type": "number"
                },
                "rate": {
                    "type": "number"
                },
                "rounded": {
                    "$ref": "#/definitions/dto.LineAmountsRounded"
                },
                "sgst": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "dto.InvoiceCalculationResponse": {
            "type": "object",
            "properties": {
                "amount_in_words": {
                    "type": "string"
                },
                "buyer": {
                    "$ref": "#/definitions/dto.PartyDTO"
                },
                "date": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string"
                },
                "formatted_totals": {
                    "$ref": "#/definitions/dto.FormattedTotalsDTO"
                },
                "intra_state": {
                    "type": "boolean"
                },
                "invoice_number": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LineItemResponse"
                    }
                },
                "notes": {
                    "type": "string"
                },
                "rounded_totals": {
                    "$ref": "#/definitions/dto.RoundedTotalsDTO"
                },
                "seller": {
                    "$ref": "#/definitions/dto.PartyDTO"
                },
                "status": {
                    "type": "string"
                },
                "totals": {
                    "$ref": "#/definitions/dto.TotalsDTO"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.AmountInWordsResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "formatted": {
                    "type": "string"
                },
                "words": {
                    "type": "string"
                }
            }
        },
        "dto.GSTRatesResponse": {
            "type": "object",
            "properties": {
                "rates": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                }
            }
        },
        "dto.MismatchDTO": {
            "type": "object",
            "properties": {
                "expected": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "stored": {
                    "type": "string"
                }
            }
        },
        "dto.VerifyInvoiceResponse": {
            "type": "object",
            "properties": {
                "mismatches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.MismatchDTO"
                    }
                },
                "problems": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "recomputed": {
                    "$ref": "#/definitions/dto.TotalsDTO"
                },
                "valid": {
                    "type": "boolean"
                }
            }
        },
        "dto.GSTINResponse": {
            "type": "object",
            "properties": {
                "gstin": {
                    "type": "string"
                },
                "pan": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "state_code": {
                    "type": "string"
                },
                "valid": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GST Invoice API",
	Description:      "Cálculo de GST (CGST + SGST) para facturas, importe en letras y validación de GSTIN.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
