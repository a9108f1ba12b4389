package domain

import "time"

// AccountEntry is one destination account in the Recaudación percentage
// split. Entries have index-stable identity only within a single render;
// add/remove always rebuilds the list.
type AccountEntry struct {
	Percentage string      `json:"percentage"`
	Kind       AccountKind `json:"kind"`
	Currency   Currency    `json:"currency"`
	Number     string      `json:"number"`
}

// PaymentPolicy is the coupled trio of Recaudación payment-acceptance flags.
type PaymentPolicy struct {
	AcceptsOverdue     bool `json:"accepts_overdue"`
	RequiresSequential bool `json:"requires_sequential"`
	AcceptsPartial     bool `json:"accepts_partial"`
}

// PaymentPolicyField names one of the three policy toggles.
type PaymentPolicyField string

const (
	PolicyAcceptsOverdue     PaymentPolicyField = "accepts_overdue"
	PolicyRequiresSequential PaymentPolicyField = "requires_sequential"
	PolicyAcceptsPartial     PaymentPolicyField = "accepts_partial"
)

// ApplyPaymentPolicyChange applies one toggle change plus all coupling rules
// atomically, so no intermediate inconsistent state is observable:
//
//   - overdue on forces sequential off; overdue off forces sequential on
//     (and with it partial off)
//   - sequential on forces partial off and overdue off
//   - partial on forces sequential off
//
// The cascade is a convenience for the caller; ValidatePaymentTypes remains
// the source of truth and independently rejects inconsistent states.
func ApplyPaymentPolicyChange(p PaymentPolicy, field PaymentPolicyField, value bool) PaymentPolicy {
	next := p
	switch field {
	case PolicyAcceptsOverdue:
		next.AcceptsOverdue = value
		if value {
			next.RequiresSequential = false
		} else {
			next.RequiresSequential = true
			next.AcceptsPartial = false
		}
	case PolicyRequiresSequential:
		next.RequiresSequential = value
		if value {
			next.AcceptsPartial = false
			next.AcceptsOverdue = false
		}
	case PolicyAcceptsPartial:
		next.AcceptsPartial = value
		if value {
			next.RequiresSequential = false
		}
	}
	return next
}

// RecaudacionForm is the accumulated Recaudación wizard state.
type RecaudacionForm struct {
	CodigoUnico   string `json:"codigo_unico"`
	PuntoServicio string `json:"punto_servicio"`
	RazonSocial   string `json:"razon_social"`
	TaxID         string `json:"tax_id"`
	GiroEmpresa   string `json:"giro_empresa"`

	RequestKind     RequestKind `json:"request_kind"`
	NombreComercial string      `json:"nombre_comercial"` // capped at 13 chars
	NumeroServicio  string      `json:"numero_servicio"`
	NombreServicio  string      `json:"nombre_servicio"` // capped at 13 chars

	FileDelivery       FileDelivery  `json:"file_delivery"`
	LoadIndicator      LoadIndicator `json:"load_indicator"`
	HorarioRecaudacion string        `json:"horario_recaudacion"`

	MonedaSoles              bool        `json:"moneda_soles"`
	MonedaDolares            bool        `json:"moneda_dolares"`
	CanalAppBanca            bool        `json:"canal_app_banca"`
	CanalAgenteLima          bool        `json:"canal_agente_lima"`
	CanalAgenteProvincias    bool        `json:"canal_agente_provincias"`
	CanalAgenteSupermercados bool        `json:"canal_agente_supermercados"`
	CanalOtros               string      `json:"canal_otros"`
	DepositKind              DepositKind `json:"deposit_kind"`

	Policy PaymentPolicy `json:"policy"`

	CodigoIdentificadorDeudor string `json:"codigo_identificador_deudor"` // capped at 13, no '/' or ','
	NumeroCaracteresDeudor    string `json:"numero_caracteres_deudor"`    // capped at 14

	ComisionAgenteEmpresaSoles       string `json:"comision_agente_empresa_soles"`
	ComisionAgenteEmpresaDolares     string `json:"comision_agente_empresa_dolares"`
	ComisionAgenteUsuarioLima        string `json:"comision_agente_usuario_lima"`
	ComisionElectronicosEmpresaSoles string `json:"comision_electronicos_empresa_soles"`
	ComisionElectronicosOtro1        string `json:"comision_electronicos_otro1"`
	ComisionElectronicosOtro2        string `json:"comision_electronicos_otro2"`

	CuentasCobranzas  []AccountEntry `json:"cuentas_cobranzas"`
	CuentasComisiones []AccountEntry `json:"cuentas_comisiones"`

	CorreosConsolidacion []string `json:"correos_consolidacion"`
	CorreosConfirmacion  []string `json:"correos_confirmacion"`
	NombreContacto       string   `json:"nombre_contacto"`
	CorreoContacto       string   `json:"correo_contacto"`
	TelefonoContacto     string   `json:"telefono_contacto"`

	TipoRecaudacion         CollectionKind `json:"tipo_recaudacion"`
	NumeroClientes          string         `json:"numero_clientes"`
	RecaudacionAnualSoles   string         `json:"recaudacion_anual_soles"`
	RecaudacionAnualDolares string         `json:"recaudacion_anual_dolares"`
}

// NewRecaudacionForm returns a form with the wizard's initial defaults. The
// policy default (no overdue, sequential required) is the only consistent
// all-false-adjacent starting state.
func NewRecaudacionForm() *RecaudacionForm {
	return &RecaudacionForm{
		RequestKind:          RequestNuevo,
		FileDelivery:         DeliverySFTP,
		LoadIndicator:        Load9PM,
		DepositKind:          DepositLineaDetallado,
		Policy:               PaymentPolicy{RequiresSequential: true},
		CuentasCobranzas:     []AccountEntry{},
		CuentasComisiones:    []AccountEntry{},
		CorreosConsolidacion: []string{},
		CorreosConfirmacion:  []string{},
	}
}

// AnnexAccountRow is one rendered row of a Recaudación account table.
type AnnexAccountRow struct {
	Percentage string `json:"percentage"`
	Kind       string `json:"kind"`
	Currency   string `json:"currency"`
	Number     string `json:"number"`
}

// RecaudacionAnnex is the flat, canonical record the Recaudación renderers
// consume.
type RecaudacionAnnex struct {
	CodigoUnico   string `json:"codigo_unico"`
	PuntoServicio string `json:"punto_servicio"`
	RazonSocial   string `json:"razon_social"`
	TaxID         string `json:"tax_id"`
	GiroEmpresa   string `json:"giro_empresa"`

	IsNuevo         bool   `json:"is_nuevo"`
	IsModificacion  bool   `json:"is_modificacion"`
	NombreComercial string `json:"nombre_comercial"`
	NumeroServicio  string `json:"numero_servicio"`
	NombreServicio  string `json:"nombre_servicio"`

	EnvioSFTP          bool   `json:"envio_sftp"`
	EnvioCorreo        bool   `json:"envio_correo"`
	Carga9PM           bool   `json:"carga_9pm"`
	Carga24Horas       bool   `json:"carga_24_horas"`
	HorarioRecaudacion string `json:"horario_recaudacion"`

	MonedaSoles              bool   `json:"moneda_soles"`
	MonedaDolares            bool   `json:"moneda_dolares"`
	CanalAppBanca            bool   `json:"canal_app_banca"`
	CanalAgenteLima          bool   `json:"canal_agente_lima"`
	CanalAgenteProvincias    bool   `json:"canal_agente_provincias"`
	CanalAgenteSupermercados bool   `json:"canal_agente_supermercados"`
	CanalOtros               string `json:"canal_otros"`

	AbonoLineaDetallado      bool `json:"abono_linea_detallado"`
	AbonoLineaConsolidado    bool `json:"abono_linea_consolidado"`
	AbonoFinalDiaConsolidado bool `json:"abono_final_dia_consolidado"`

	AceptaPagosVencidos  bool `json:"acepta_pagos_vencidos"`
	ObligaPagosSucesivos bool `json:"obliga_pagos_sucesivos"`
	AceptaPagosParciales bool `json:"acepta_pagos_parciales"`

	CodigoIdentificadorDeudor string `json:"codigo_identificador_deudor"`
	NumeroCaracteresDeudor    string `json:"numero_caracteres_deudor"`

	ComisionAgenteEmpresaSoles       string `json:"comision_agente_empresa_soles"`
	ComisionAgenteEmpresaDolares     string `json:"comision_agente_empresa_dolares"`
	ComisionAgenteUsuarioLima        string `json:"comision_agente_usuario_lima"`
	ComisionElectronicosEmpresaSoles string `json:"comision_electronicos_empresa_soles"`
	ComisionElectronicosOtro1        string `json:"comision_electronicos_otro1"`
	ComisionElectronicosOtro2        string `json:"comision_electronicos_otro2"`

	CuentasCobranzas  []AnnexAccountRow `json:"cuentas_cobranzas"`
	CuentasComisiones []AnnexAccountRow `json:"cuentas_comisiones"`

	CorreosConsolidacion string `json:"correos_consolidacion"`
	CorreosConfirmacion  string `json:"correos_confirmacion"`
	NombreContacto       string `json:"nombre_contacto"`
	CorreoContacto       string `json:"correo_contacto"`
	TelefonoContacto     string `json:"telefono_contacto"`

	RecaudacionExclusiva    bool   `json:"recaudacion_exclusiva"`
	RecaudacionCompartida   bool   `json:"recaudacion_compartida"`
	NumeroClientes          string `json:"numero_clientes"`
	RecaudacionAnualSoles   string `json:"recaudacion_anual_soles"`
	RecaudacionAnualDolares string `json:"recaudacion_anual_dolares"`

	GeneratedAt time.Time `json:"generated_at"`
}
