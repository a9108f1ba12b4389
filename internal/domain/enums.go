package domain

// Flow identifies which enrollment annex a wizard session is building.
type Flow string

const (
	FlowPagosMasivos Flow = "pagos-masivos"
	FlowRecaudacion  Flow = "recaudacion"
)

// Valid reports whether the flow is one of the two supported annexes.
func (f Flow) Valid() bool {
	return f == FlowPagosMasivos || f == FlowRecaudacion
}

// Currency is one of the two currencies an annex can operate in.
type Currency string

const (
	CurrencySoles   Currency = "soles"
	CurrencyDolares Currency = "dolares"
)

// Symbol returns the printed currency symbol used on the annex forms.
func (c Currency) Symbol() string {
	if c == CurrencyDolares {
		return "$"
	}
	return "S/"
}

// AccountKind distinguishes savings from checking accounts.
type AccountKind string

const (
	AccountAhorro    AccountKind = "ahorro"
	AccountCorriente AccountKind = "corriente"
)

// ServiceKind enumerates the Pagos Masivos payment services.
type ServiceKind string

const (
	ServiceRemuneraciones ServiceKind = "remuneraciones"
	ServiceProveedores    ServiceKind = "proveedores"
	ServicePagosVarios    ServiceKind = "pagosVarios"
)

// ServiceKinds is the fixed service order used by validators and renderers.
var ServiceKinds = []ServiceKind{ServiceRemuneraciones, ServiceProveedores, ServicePagosVarios}

// Currencies is the fixed currency order used by validators and renderers.
var Currencies = []Currency{CurrencySoles, CurrencyDolares}

// RequestKind marks an enrollment as a new affiliation or a modification.
type RequestKind string

const (
	RequestNuevo        RequestKind = "nuevo"
	RequestModificacion RequestKind = "modificacion"
)

// FileDelivery is how the Recaudación collection file reaches the client.
type FileDelivery string

const (
	DeliverySFTP   FileDelivery = "sftp"
	DeliveryCorreo FileDelivery = "correo"
)

// LoadIndicator is the Recaudación debt-load schedule.
type LoadIndicator string

const (
	Load9PM     LoadIndicator = "9pm"
	Load24Hours LoadIndicator = "24horas"
)

// DepositKind is how collected funds are credited.
type DepositKind string

const (
	DepositLineaDetallado      DepositKind = "lineaDetallado"
	DepositLineaConsolidado    DepositKind = "lineaConsolidado"
	DepositFinalDiaConsolidado DepositKind = "finalDiaConsolidado"
)

// CollectionKind is the optional exclusivity declaration.
type CollectionKind string

const (
	CollectionExclusiva  CollectionKind = "exclusiva"
	CollectionCompartida CollectionKind = "compartida"
)

// YesNo is a printed Sí/No choice on the annex.
type YesNo string

const (
	Yes YesNo = "si"
	No  YesNo = "no"
)
