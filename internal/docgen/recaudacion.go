package docgen

import (
	"anexos/internal/domain"
)

// RenderRecaudacion draws the complete Recaudación annex onto the canvas.
func RenderRecaudacion(c Canvas, a *domain.RecaudacionAnnex) {
	l := newLayout(c)

	c.SetFont(FontBold, 16)
	c.TextCentered(l.pageW/2, l.y, "ANEXO SERVICIO DE RECAUDACIÓN")
	l.y += 10

	l.addText("Complete este anexo para afiliarse al servicio de Recaudación de Interbank.",
		margin, l.contentWidth(), 10)
	l.y += 10

	// Company identification
	l.addBoldText("Información de la Empresa", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	halfWidth := (l.pageW - 3*margin) / 2
	l.label(margin, "Código Único:")
	l.label(margin+halfWidth+10, "Punto de Servicio:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.CodigoUnico)
	l.box(margin+halfWidth+10, halfWidth, 8, a.PuntoServicio)
	l.y += 12

	l.label(margin, "Nombre o Razón Social:")
	l.label(margin+halfWidth+10, "RUC:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.RazonSocial)
	l.box(margin+halfWidth+10, halfWidth, 8, a.TaxID)
	l.y += 12

	l.label(margin, "Giro de la Empresa:")
	l.y += 5
	l.box(margin, l.contentWidth(), 8, a.GiroEmpresa)
	l.y += 15

	// Service configuration
	l.addBoldText("Configuración del Servicio", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	l.checkbox(margin, a.IsNuevo, "Nuevo Servicio")
	l.checkbox(margin+60, a.IsModificacion, "Modificación")
	l.y += 10

	l.label(margin, "Nombre Comercial del Cliente:")
	l.label(margin+halfWidth+10, "Número de Servicio:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.NombreComercial)
	l.box(margin+halfWidth+10, halfWidth, 8, a.NumeroServicio)
	l.y += 12

	l.label(margin, "Nombre de Servicio:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.NombreServicio)
	l.y += 15

	// General characteristics
	l.addBoldText("Características Generales del Servicio", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	l.label(margin, "Envío de Archivo de Conciliación:")
	l.y += 5
	l.checkbox(margin, a.EnvioSFTP, "SFTP")
	l.checkbox(margin+50, a.EnvioCorreo, "Correo Electrónico")
	l.y += 10

	l.label(margin, "Indicador de Carga:")
	l.y += 5
	l.checkbox(margin, a.Carga9PM, "Hasta las 9 p.m.")
	l.checkbox(margin+50, a.Carga24Horas, "24 horas")
	l.y += 10

	l.label(margin, "Horario de Recaudación:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.HorarioRecaudacion)
	l.y += 15

	l.ensureSpace(80)

	// Specific characteristics
	l.addBoldText("Características Puntuales del Servicio", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	l.label(margin, "Moneda de Cobranza:")
	l.y += 5
	l.checkbox(margin, a.MonedaSoles, "Soles")
	l.checkbox(margin+50, a.MonedaDolares, "Dólares")
	l.y += 10

	l.label(margin, "Canal de Cobro:")
	l.y += 5
	l.checkbox(margin, a.CanalAppBanca, "Canales Electrónicos (App Interbank / Banca por Internet)")
	l.y += 8
	l.checkbox(margin, a.CanalAgenteLima, "Interbank Agente Lima")
	l.checkbox(margin+70, a.CanalAgenteProvincias, "Interbank Agente Provincias")
	l.y += 8
	l.checkbox(margin, a.CanalAgenteSupermercados, "Interbank Agente Supermercados")
	c.Text(margin+90, l.y+4, "Otro:")
	l.boxAt(margin+102, l.y-1, 60, 6, a.CanalOtros)
	l.y += 10

	l.label(margin, "Tipo de Abono en Cuenta:")
	l.y += 5
	l.checkbox(margin, a.AbonoLineaDetallado, "En línea detallado")
	l.checkbox(margin+60, a.AbonoLineaConsolidado, "En línea consolidado")
	l.y += 8
	l.checkbox(margin, a.AbonoFinalDiaConsolidado, "Fin de día consolidado")
	l.y += 12

	l.ensureSpace(60)

	// Payment types
	l.addBoldText("Tipos de Pago", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	l.checkbox(margin, a.AceptaPagosVencidos, "¿Acepta pagos vencidos?")
	l.y += 8
	l.checkbox(margin, a.ObligaPagosSucesivos, "¿Obliga pagos sucesivos?")
	l.y += 8
	l.checkbox(margin, a.AceptaPagosParciales, "¿Acepta pagos parciales?")
	l.y += 12

	// Debtor identifier
	l.addBoldText("Configuración del Deudor", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	l.label(margin, "Código Identificador del Deudor (Referencia):")
	l.label(margin+halfWidth+10, "Número de Caracteres del Código:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.CodigoIdentificadorDeudor)
	l.box(margin+halfWidth+10, halfWidth, 8, a.NumeroCaracteresDeudor)
	l.y += 15

	l.ensureSpace(80)

	// Commission structure
	l.addBoldText("Estructura de Comisiones", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 9)
	commissionRows := []struct {
		label string
		value string
	}{
		{"Interbank Agente - Empresa - Soles (S/)", a.ComisionAgenteEmpresaSoles},
		{"Interbank Agente - Empresa - Dólares (US$)", a.ComisionAgenteEmpresaDolares},
		{"Interbank Agente - Usuario (Lima y Provincias)", a.ComisionAgenteUsuarioLima},
		{"Canales Electrónicos - Empresa - Soles (S/)", a.ComisionElectronicosEmpresaSoles},
		{"Otros (1)", a.ComisionElectronicosOtro1},
		{"Otros (2)", a.ComisionElectronicosOtro2},
	}
	for _, row := range commissionRows {
		l.ensureSpace(rowHeight)
		c.Text(margin, l.y+4, row.label)
		l.boxAt(margin+110, l.y-1, 40, 6, row.value)
		l.y += 8
	}
	l.y += 6

	l.ensureSpace(80)

	// Account definitions
	l.addBoldText("Cuentas para Abonos de Cobranzas", margin, l.contentWidth(), 10)
	l.y += 5
	accountTable(l, a.CuentasCobranzas)
	l.y += 8

	l.ensureSpace(40)
	l.addBoldText("Cuentas para Cargos por Comisiones", margin, l.contentWidth(), 10)
	l.y += 5
	accountTable(l, a.CuentasComisiones)
	l.y += 10

	l.ensureSpace(80)

	// Contact block
	l.addBoldText("Información de Contacto y Correos", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	l.label(margin, "Correos para el Envío del Archivo de Consolidación:")
	l.y += 5
	l.box(margin, l.contentWidth(), 8, a.CorreosConsolidacion)
	l.y += 12

	l.label(margin, "Correos para Recepción de Confirmación de Carga:")
	l.y += 5
	l.box(margin, l.contentWidth(), 8, a.CorreosConfirmacion)
	l.y += 12

	l.label(margin, "Nombre Contacto Servicio de Recaudación:")
	l.y += 5
	l.box(margin, l.contentWidth(), 8, a.NombreContacto)
	l.y += 12

	l.label(margin, "Correo Electrónico:")
	l.label(margin+halfWidth+10, "Teléfono:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.CorreoContacto)
	l.box(margin+halfWidth+10, halfWidth, 8, a.TelefonoContacto)
	l.y += 15

	l.ensureSpace(80)

	// Optional statistics
	l.addBoldText("Recaudación de la Empresa", margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	l.label(margin, "Tipo de Recaudación:")
	l.y += 5
	l.checkbox(margin, a.RecaudacionExclusiva, "Exclusiva")
	l.checkbox(margin+50, a.RecaudacionCompartida, "Compartida")
	l.y += 10

	l.label(margin, "Número de Clientes / Socios / Alumnos:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.NumeroClientes)
	l.y += 12

	l.label(margin, "Recaudación Anual Promedio:")
	l.y += 5
	c.Text(margin, l.y+4, "En Soles (S/)")
	l.boxAt(margin+40, l.y-1, 50, 6, a.RecaudacionAnualSoles)
	c.Text(margin+100, l.y+4, "En Dólares (US$)")
	l.boxAt(margin+140, l.y-1, 40, 6, a.RecaudacionAnualDolares)
	l.y += 15

	l.ensureSpace(70)
	signatures(l, a.NombreContacto)

	l.footer(a.GeneratedAt)
}

// accountTable draws one percentage-split account list. An empty list still
// prints the header row so the form can be completed by hand. The list is
// user-sized, so each row gets its own page-break check and the header row
// repeats after a break.
func accountTable(l *layout, rows []domain.AnnexAccountRow) {
	c := l.c
	colWidths := [4]float64{30, 35, 30, 60}
	headers := [4]string{"Porcentaje (%)", "Tipo de Cuenta", "Moneda", "Número de Cuenta"}

	headerRow := func() {
		c.SetFont(FontBold, 9)
		x := margin
		for i, h := range headers {
			c.Rect(x, l.y, colWidths[i], rowHeight)
			c.Text(x+2, l.y+5, h)
			x += colWidths[i]
		}
		l.y += rowHeight
		c.SetFont(FontRegular, 9)
	}

	l.ensureSpace(2 * rowHeight)
	headerRow()

	for _, row := range rows {
		if l.ensureSpace(rowHeight) {
			headerRow()
		}
		values := [4]string{row.Percentage, row.Kind, row.Currency, row.Number}
		x := margin
		for i, v := range values {
			c.Rect(x, l.y, colWidths[i], rowHeight)
			c.Text(x+2, l.y+5, v)
			x += colWidths[i]
		}
		l.y += rowHeight
	}
}
