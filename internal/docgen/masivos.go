package docgen

import (
	"anexos/internal/domain"
)

// RenderMasivos draws the complete Pagos Masivos annex onto the canvas.
func RenderMasivos(c Canvas, a *domain.MasivosAnnex) {
	l := newLayout(c)

	// Header
	c.SetFont(FontBold, 16)
	c.TextCentered(l.pageW/2, l.y, "ANEXO PAGOS MASIVOS")
	l.y += 10

	l.addText("Si desea afiliarse a los servicios de Pago de Remuneraciones y CTS, Pago a Proveedores y/o Pagos Varios, por favor complete este anexo.",
		margin, l.contentWidth(), 10)
	l.y += 10

	// Identification boxes
	c.SetFont(FontRegular, 10)
	l.label(margin, "Razón Social / Nombre del Cliente:")
	l.y += 5
	l.box(margin, l.contentWidth(), 8, a.CompanyName)
	l.y += 12

	l.label(margin, "RUC / DNI:")
	l.y += 5
	l.box(margin, l.contentWidth(), 8, a.TaxID)
	l.y += 15

	// Contact person
	l.addBoldText("Persona de Contacto (En caso se requieran coordinaciones por correcciones en el formato)",
		margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	halfWidth := (l.pageW - 3*margin) / 2
	l.label(margin, "Nombre Contacto:")
	l.label(margin+halfWidth+10, "Teléfono:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.ContactName)
	l.box(margin+halfWidth+10, halfWidth, 8, a.ContactPhone)
	l.y += 12

	l.label(margin, "Correo 1:")
	l.label(margin+halfWidth+10, "Correo 2:")
	l.y += 5
	l.box(margin, halfWidth, 8, a.ContactEmail1)
	l.box(margin+halfWidth+10, halfWidth, 8, a.ContactEmail2)
	l.y += 15

	// Service selection
	l.addBoldText(`Servicio (Marcar con "X" la opción que desea seleccionar)`, margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	thirdWidth := (l.pageW - 4*margin) / 3
	l.checkbox(margin, a.IsRemuneraciones, "Remuneraciones/CTS")
	l.checkbox(margin+thirdWidth, a.IsProveedores, "Proveedores (1)")
	l.checkbox(margin+2*thirdWidth, a.IsPagosVarios, "Pagos Varios (2)")
	l.y += 10

	l.checkbox(margin, a.IsNuevo, "Nuevo")
	l.checkbox(margin+80, a.IsModificacion, "Modificación ( ) Solo se completarán los campos a modificar")
	l.y += 10

	l.addText("(1) Incluye pagos a Persona Jurídica y Persona Natural con documento oficial de identidad, permite realizar pagos mediante abono en cuenta mismo banco, transferencias CCI/BCR y cheques de gerencia.",
		margin, l.contentWidth(), 8)
	l.y += 3
	l.addText("(2) Incluye Persona Natural con documento oficial de identidad, permite realizar pagos en efectivo (Orden de Pago), cheques de gerencia y abono en cuenta)",
		margin, l.contentWidth(), 8)
	l.y += 8

	// Charge account
	l.addBoldText(`Cuenta de Cargo para el cobro de comisiones (Marcar con "X" la opción que desea seleccionar)`,
		margin, l.contentWidth(), 10)
	l.y += 5

	c.SetFont(FontRegular, 10)
	soles := a.Currency == domain.CurrencySoles
	l.checkbox(margin, soles && a.AccountKind == domain.AccountAhorro, "Ahorro")
	l.checkbox(margin+30, soles && a.AccountKind == domain.AccountCorriente, "Corriente S/")
	c.Text(margin+80, l.y+4, "Nro. de cuenta")
	l.box(margin+120, 60, 6, accountIf(soles, a.AccountNumber))
	l.y += 10

	dolares := a.Currency == domain.CurrencyDolares
	l.checkbox(margin, dolares && a.AccountKind == domain.AccountAhorro, "Ahorro")
	l.checkbox(margin+30, dolares && a.AccountKind == domain.AccountCorriente, "Corriente $")
	c.Text(margin+80, l.y+4, "Nro. de Cuenta")
	l.box(margin+120, 60, 6, accountIf(dolares, a.AccountNumber))
	l.y += 12

	l.addText("Nota: Esta es la cuenta principal de cargo de comisiones.", margin, l.contentWidth(), 8)
	l.y += 10

	l.ensureSpace(80)

	// Optional controls table
	l.addBoldText(`Controles Opcionales (Si no se requieren controles, colocar "Sin límites" o "SL", caso contrario se rechazará la solicitud)`,
		margin, l.contentWidth(), 10)
	l.y += 5

	controlsTable(l, a)
	l.y += 10

	l.ensureSpace(100)

	// Additional block for Proveedores and Pagos Varios
	l.addBoldText("Completar solo en caso de elegir el servicio de Pago Proveedores y/o Pagos Varios",
		margin, l.contentWidth(), 10)
	l.y += 5

	l.addText("Número de días máximo para el cobro de cheques y ordenes de pagos ( )", margin, l.contentWidth(), 10)
	l.y += 5

	l.label(margin, "Proveedores")
	l.boxAt(margin+40, l.y-2, 30, 6, a.MaxDaysProveedores)
	l.label(margin+80, "Pagos Varios")
	l.boxAt(margin+120, l.y-2, 30, 6, a.MaxDaysVarios)
	l.y += 10

	l.addText("( ) Tiempo Máximo 120 días. Culminado el plazo los cheques y órdenes de pago se revocan y se devuelven los fondos a la cuenta de cargo de la operación. En caso no indicar días, se configurará con el tiempo máximo.",
		margin, l.contentWidth(), 8)
	l.y += 8

	// Invoice consolidation choice
	l.addBoldText("Opción de consolidar Facturas, Notas de Crédito, Notas de Débito en un solo abono o Cheque( )",
		margin, l.contentWidth(), 10)
	l.addText(`(Marcar con "X" la opción que desea seleccionar)`, margin, l.contentWidth(), 8)
	l.y += 5

	c.SetFont(FontRegular, 10)
	c.Text(margin, l.y+4, "Proveedores")
	l.checkbox(margin+40, a.ConsolidateProveedores == "si", "Sí")
	l.checkbox(margin+65, a.ConsolidateProveedores == "no", "No")
	l.y += 8

	c.Text(margin, l.y+4, "Pagos Varios")
	l.checkbox(margin+40, a.ConsolidateVarios == "si", "Sí")
	l.checkbox(margin+65, a.ConsolidateVarios == "no", "No")
	l.y += 10

	l.addText("( ) En caso no marque una opción, se considera que no desea la opción de consolidar Facturas, Notas de Crédito, Notas de Débito en un solo abono o Cheque",
		margin, l.contentWidth(), 8)
	l.y += 8

	l.ensureSpace(100)

	// Commission distribution for manager's cheques
	l.addBoldText("Distribución Comisión Cheque Gerencia (Ordenante/Pagador) ( )", margin, l.contentWidth(), 10)
	l.y += 5
	commissionTable(l, a)
	l.y += 4

	l.addText("( ) Al no elegir distribución de comisión será asumida en su totalidad por el Cliente",
		margin, l.contentWidth(), 8)
	l.y += 12

	l.ensureSpace(70)
	signatures(l, a.ContactName)

	l.footer(a.GeneratedAt)
}

func accountIf(selected bool, number string) string {
	if selected {
		return number
	}
	return ""
}

// controlsTable draws the five-column ceilings grid: one row per service,
// batch and payment ceilings split by currency. Rows check for remaining
// space and the two header rows repeat after a page break.
func controlsTable(l *layout, a *domain.MasivosAnnex) {
	c := l.c
	colWidths := [5]float64{40, 30, 30, 30, 30}

	headerRows := func() {
		c.SetFont(FontBold, 9)
		c.Rect(margin, l.y, colWidths[0], rowHeight)
		c.Rect(margin+colWidths[0], l.y, colWidths[1]+colWidths[2], rowHeight)
		c.TextCentered(margin+colWidths[0]+20, l.y+5, "Control de Monto Máximo por Lote")
		c.Rect(margin+colWidths[0]+colWidths[1]+colWidths[2], l.y, colWidths[3]+colWidths[4], rowHeight)
		c.TextCentered(margin+colWidths[0]+colWidths[1]+colWidths[2]+20, l.y+5, "Control de Monto Máximo por Pago")
		l.y += rowHeight

		c.Rect(margin, l.y, colWidths[0], rowHeight)
		x := margin + colWidths[0]
		for i, header := range []string{"S/", "$", "S/", "$"} {
			c.Rect(x, l.y, colWidths[i+1], rowHeight)
			c.TextCentered(x+15, l.y+5, header)
			x += colWidths[i+1]
		}
		l.y += rowHeight
		c.SetFont(FontRegular, 9)
	}

	l.ensureSpace(3 * rowHeight)
	headerRows()

	rows := []struct {
		name   string
		values [4]string
	}{
		{"Remuneraciones", [4]string{a.MaxBatchRemuneracionesSoles, a.MaxBatchRemuneracionesDolares, a.MaxPaymentRemuneracionesSoles, a.MaxPaymentRemuneracionesDolares}},
		{"Proveedores", [4]string{a.MaxBatchProveedoresSoles, a.MaxBatchProveedoresDolares, a.MaxPaymentProveedoresSoles, a.MaxPaymentProveedoresDolares}},
		{"Pagos Varios", [4]string{a.MaxBatchVariosSoles, a.MaxBatchVariosDolares, a.MaxPaymentVariosSoles, a.MaxPaymentVariosDolares}},
	}
	for _, row := range rows {
		if l.ensureSpace(rowHeight) {
			headerRows()
		}
		c.Rect(margin, l.y, colWidths[0], rowHeight)
		c.Text(margin+2, l.y+5, row.name)
		x := margin + colWidths[0]
		for i, v := range row.values {
			c.Rect(x, l.y, colWidths[i+1], rowHeight)
			c.Text(x+2, l.y+5, v)
			x += colWidths[i+1]
		}
		l.y += rowHeight
	}
}

// commissionTable draws the Empresa/Proveedor split per currency. Empty
// cells keep the "% " placeholder so the printed form can be completed by
// hand.
func commissionTable(l *layout, a *domain.MasivosAnnex) {
	c := l.c
	colWidths := [3]float64{40, 30, 30}

	headerRow := func() {
		c.SetFont(FontBold, 9)
		c.Rect(margin, l.y, colWidths[0], rowHeight)
		c.Rect(margin+colWidths[0], l.y, colWidths[1], rowHeight)
		c.TextCentered(margin+colWidths[0]+15, l.y+5, "S/")
		c.Rect(margin+colWidths[0]+colWidths[1], l.y, colWidths[2], rowHeight)
		c.TextCentered(margin+colWidths[0]+colWidths[1]+15, l.y+5, "$")
		l.y += rowHeight
		c.SetFont(FontRegular, 9)
	}

	l.ensureSpace(2 * rowHeight)
	headerRow()

	rows := []struct {
		name           string
		soles, dolares string
	}{
		{"Empresa", a.CommissionEmpresaSoles, a.CommissionEmpresaDolares},
		{"Proveedor", a.CommissionProveedorSoles, a.CommissionProveedorDolares},
	}
	for _, row := range rows {
		if l.ensureSpace(rowHeight) {
			headerRow()
		}
		c.Rect(margin, l.y, colWidths[0], rowHeight)
		c.Text(margin+2, l.y+5, row.name)
		c.Rect(margin+colWidths[0], l.y, colWidths[1], rowHeight)
		c.Text(margin+colWidths[0]+2, l.y+5, percentCell(row.soles))
		c.Rect(margin+colWidths[0]+colWidths[1], l.y, colWidths[2], rowHeight)
		c.Text(margin+colWidths[0]+colWidths[1]+2, l.y+5, percentCell(row.dolares))
		l.y += rowHeight
	}
}

func percentCell(v string) string {
	if v == "" {
		return "% "
	}
	return v + "%"
}

// signatures draws the two signing blocks side by side.
func signatures(l *layout, legalRepresentative string) {
	c := l.c
	halfWidth := (l.pageW - 3*margin) / 2
	rightX := margin + halfWidth + margin

	c.Line(margin, l.y+16, margin+halfWidth, l.y+16)
	c.Line(rightX, l.y+16, rightX+halfWidth, l.y+16)
	l.y += 22

	c.SetFont(FontBold, 9)
	c.TextCentered(margin+halfWidth/2, l.y, "Firma Representante Legal del Cliente")
	c.TextCentered(rightX+halfWidth/2, l.y, "Firma del banco")
	l.y += 5

	c.SetFont(FontRegular, 9)
	c.TextCentered(margin+halfWidth/2, l.y, "Nombres y Apellidos:")
	c.TextCentered(rightX+halfWidth/2, l.y, "Tienda / Soporte Banca Comercial:")
	l.y += 3

	l.box(margin, halfWidth, 8, legalRepresentative)
	l.box(rightX, halfWidth, 8, "")
	l.y += 12
}
