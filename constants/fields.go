package constants

// Keyword families for the header fields of an export invoice. Each family
// lists every label variant observed in the source documents; matching is
// case- and accent-insensitive, first variant in grid order wins.
var (
	ClientKeywords          = []string{"CLIENTE", "CLIENT", "CUSTOMER", "SOLD TO", "SEÑORES"}
	ExpReferenceKeywords    = []string{"EXPEDIENTE", "REF EXP", "REFERENCIA", "EXP N", "EXP NO"}
	DayKeywords             = []string{"DIA", "DAY"}
	MonthKeywords           = []string{"MES", "MONTH"}
	YearKeywords            = []string{"AÑO", "ANO", "YEAR"}
	SaleConditionKeywords   = []string{"CONDICION DE VENTA", "COND VENTA", "SALE CONDITION", "TERMS OF SALE"}
	LoadPortKeywords        = []string{"PUERTO EMBARQUE", "PUERTO DE EMBARQUE", "PORT OF LOADING"}
	DestinationPortKeywords = []string{"PUERTO DESTINO", "PUERTO DE DESTINO", "PORT OF DESTINATION", "DESTINO"}
	CurrencyKeywords        = []string{"MONEDA", "CURRENCY"}
	PaymentTermsKeywords    = []string{"FORMA DE PAGO", "CONDICION DE PAGO", "PAYMENT TERMS"}
	ExchangeRateKeywords    = []string{"TIPO CAMBIO", "TIPO DE CAMBIO", "EXCHANGE RATE"}
	ObservationKeywords     = []string{"OBSERVACIONES", "OBSERVACION", "NOTES", "REMARKS"}
	TotalFOBKeywords        = []string{"TOTAL FOB", "TOTAL F.O.B."}
)

// Column families for the product table. A header row qualifies only when it
// carries both a quantity and a description column.
var (
	QuantityColumns    = []string{"CANTIDAD", "CANT", "QUANTITY", "QTY", "BULTOS"}
	DescriptionColumns = []string{"DESCRIPCION", "DETALLE", "DESCRIPTION", "PRODUCTO", "MERCADERIA"}
	UnitPriceColumns   = []string{"PRECIO UNIT", "PRECIO UNITARIO", "P UNITARIO", "UNIT PRICE"}
	LineTotalColumns   = []string{"TOTAL", "TOTAL LINEA", "AMOUNT", "IMPORTE"}
)

// Marker sets for the raw-fragment fallback path.
var (
	SaleConditionMarkers = []string{"BAJO CONDICION", "CONSIGNACION", "UNDER CONDITION"}
	ExchangeRateMarkers  = []string{"TIPO CAMBIO", "EXCHANGE RATE"}

	// BoilerplateMarkers flag fragments that are letterhead or banking
	// details rather than a usable observation.
	BoilerplateMarkers = []string{"SOCIEDAD", "COMMERCIAL INVOICE", "BANK"}
)

// monthNames maps the numeric forms and 3-letter Spanish abbreviation of each
// month to its full name. Keys are pre-normalized (uppercase, unaccented).
var monthNames = map[string]string{
	"1": "Enero", "01": "Enero", "ENE": "Enero",
	"2": "Febrero", "02": "Febrero", "FEB": "Febrero",
	"3": "Marzo", "03": "Marzo", "MAR": "Marzo",
	"4": "Abril", "04": "Abril", "ABR": "Abril",
	"5": "Mayo", "05": "Mayo", "MAY": "Mayo",
	"6": "Junio", "06": "Junio", "JUN": "Junio",
	"7": "Julio", "07": "Julio", "JUL": "Julio",
	"8": "Agosto", "08": "Agosto", "AGO": "Agosto",
	"9": "Septiembre", "09": "Septiembre", "SEP": "Septiembre",
	"10": "Octubre", "OCT": "Octubre",
	"11": "Noviembre", "NOV": "Noviembre",
	"12": "Diciembre", "DIC": "Diciembre",
}

// MonthName resolves a month token (digit, zero-padded digit, or 3-letter
// abbreviation) to its full Spanish name. Unknown tokens pass through
// unchanged so a document that already spells the month out keeps its text.
func MonthName(token string) string {
	if name, ok := monthNames[token]; ok {
		return name
	}
	return token
}
