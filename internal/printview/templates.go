package printview

const masivosHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Anexo Pagos Masivos - {{.Annex.CompanyName}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="header">
  <h1>ANEXO PAGOS MASIVOS</h1>
  <p>Si desea afiliarse a los servicios de Pago de Remuneraciones y CTS, Pago a Proveedores y/o Pagos Varios, por favor complete este anexo.</p>
</div>

<div class="field-row">
  <span class="field-label">Razón Social / Nombre del Cliente:</span>
  <div class="field-box">{{.Annex.CompanyName}}</div>
</div>
<div class="field-row">
  <span class="field-label">RUC / DNI:</span>
  <div class="field-box">{{.Annex.TaxID}}</div>
</div>

<div class="section-title">Persona de Contacto (En caso se requieran coordinaciones por correcciones en el formato)</div>
<div class="field-row">
  <span class="field-label">Nombre Contacto:</span>
  <div class="field-box-small">{{.Annex.ContactName}}</div>
  <span class="field-label">Teléfono:</span>
  <div class="field-box-small">{{.Annex.ContactPhone}}</div>
</div>
<div class="field-row">
  <span class="field-label">Correo 1:</span>
  <div class="field-box-small">{{.Annex.ContactEmail1}}</div>
  <span class="field-label">Correo 2:</span>
  <div class="field-box-small">{{.Annex.ContactEmail2}}</div>
</div>

<div class="section-title">Servicio (Marcar con &quot;X&quot; la opción que desea seleccionar)</div>
<div class="checkbox-section">
  <span class="checkbox">{{mark .Annex.IsRemuneraciones}}</span> Remuneraciones/CTS
  <span class="checkbox">{{mark .Annex.IsProveedores}}</span> Proveedores (1)
  <span class="checkbox">{{mark .Annex.IsPagosVarios}}</span> Pagos Varios (2)
</div>
<div class="checkbox-section">
  <span class="checkbox">{{mark .Annex.IsNuevo}}</span> Nuevo
  <span class="checkbox">{{mark .Annex.IsModificacion}}</span> Modificación ( ) Solo se completarán los campos a modificar
</div>
<p class="note">(1) Incluye pagos a Persona Jurídica y Persona Natural con documento oficial de identidad, permite realizar pagos mediante abono en cuenta mismo banco, transferencias CCI/BCR y cheques de gerencia.</p>
<p class="note">(2) Incluye Persona Natural con documento oficial de identidad, permite realizar pagos en efectivo (Orden de Pago), cheques de gerencia y abono en cuenta)</p>

<div class="section-title">Cuenta de Cargo para el cobro de comisiones (Marcar con &quot;X&quot; la opción que desea seleccionar)</div>
<div class="checkbox-section">
  <span class="checkbox">{{mark .SolesAhorro}}</span> Ahorro
  <span class="checkbox">{{mark .SolesCte}}</span> Corriente S/
  <span class="field-label">Nro. de cuenta</span>
  <div class="field-box-small">{{.SolesNumber}}</div>
</div>
<div class="checkbox-section">
  <span class="checkbox">{{mark .DolaresAhorro}}</span> Ahorro
  <span class="checkbox">{{mark .DolaresCte}}</span> Corriente $
  <span class="field-label">Nro. de Cuenta</span>
  <div class="field-box-small">{{.DolaresNumber}}</div>
</div>
<p class="note">Nota: Esta es la cuenta principal de cargo de comisiones.</p>

<div class="section-title">Controles Opcionales (Si no se requieren controles, colocar &quot;Sin límites&quot; o &quot;SL&quot;, caso contrario se rechazará la solicitud)</div>
<table>
  <thead>
    <tr><th></th><th colspan="2">Control de Monto Máximo por Lote</th><th colspan="2">Control de Monto Máximo por Pago</th></tr>
    <tr><th></th><th>S/</th><th>$</th><th>S/</th><th>$</th></tr>
  </thead>
  <tbody>
    <tr><td>Remuneraciones</td><td>{{.Annex.MaxBatchRemuneracionesSoles}}</td><td>{{.Annex.MaxBatchRemuneracionesDolares}}</td><td>{{.Annex.MaxPaymentRemuneracionesSoles}}</td><td>{{.Annex.MaxPaymentRemuneracionesDolares}}</td></tr>
    <tr><td>Proveedores</td><td>{{.Annex.MaxBatchProveedoresSoles}}</td><td>{{.Annex.MaxBatchProveedoresDolares}}</td><td>{{.Annex.MaxPaymentProveedoresSoles}}</td><td>{{.Annex.MaxPaymentProveedoresDolares}}</td></tr>
    <tr><td>Pagos Varios</td><td>{{.Annex.MaxBatchVariosSoles}}</td><td>{{.Annex.MaxBatchVariosDolares}}</td><td>{{.Annex.MaxPaymentVariosSoles}}</td><td>{{.Annex.MaxPaymentVariosDolares}}</td></tr>
  </tbody>
</table>

<div class="section-title">Completar solo en caso de elegir el servicio de Pago Proveedores y/o Pagos Varios</div>
<p>Número de días máximo para el cobro de cheques y ordenes de pagos ( )</p>
<div class="field-row">
  <span class="field-label">Proveedores</span>
  <div class="field-box-small">{{.Annex.MaxDaysProveedores}}</div>
  <span class="field-label">Pagos Varios</span>
  <div class="field-box-small">{{.Annex.MaxDaysVarios}}</div>
</div>
<p class="note">( ) Tiempo Máximo 120 días. Culminado el plazo los cheques y órdenes de pago se revocan y se devuelven los fondos a la cuenta de cargo de la operación. En caso no indicar días, se configurará con el tiempo máximo.</p>

<div class="section-title">Opción de consolidar Facturas, Notas de Crédito, Notas de Débito en un solo abono o Cheque( )</div>
<div class="checkbox-section">
  <span class="field-label">Proveedores</span>
  <span class="checkbox">{{if eq .Annex.ConsolidateProveedores "si"}}X{{end}}</span> Sí
  <span class="checkbox">{{if eq .Annex.ConsolidateProveedores "no"}}X{{end}}</span> No
</div>
<div class="checkbox-section">
  <span class="field-label">Pagos Varios</span>
  <span class="checkbox">{{if eq .Annex.ConsolidateVarios "si"}}X{{end}}</span> Sí
  <span class="checkbox">{{if eq .Annex.ConsolidateVarios "no"}}X{{end}}</span> No
</div>
<p class="note">( ) En caso no marque una opción, se considera que no desea la opción de consolidar Facturas, Notas de Crédito, Notas de Débito en un solo abono o Cheque</p>

<div class="section-title">Distribución Comisión Cheque Gerencia (Ordenante/Pagador) ( )</div>
<table>
  <thead><tr><th></th><th>S/</th><th>$</th></tr></thead>
  <tbody>
    <tr><td>Empresa</td><td>{{pct .Annex.CommissionEmpresaSoles}}</td><td>{{pct .Annex.CommissionEmpresaDolares}}</td></tr>
    <tr><td>Proveedor</td><td>{{pct .Annex.CommissionProveedorSoles}}</td><td>{{pct .Annex.CommissionProveedorDolares}}</td></tr>
  </tbody>
</table>
<p class="note">( ) Al no elegir distribución de comisión será asumida en su totalidad por el Cliente</p>

<div class="signature-section">
  <div class="signature-box">
    <div class="signature-line"></div>
    <p><strong>Firma Representante Legal del Cliente</strong></p>
    <p>Nombres y Apellidos:</p>
    <div class="field-box">{{.Annex.ContactName}}</div>
  </div>
  <div class="signature-box">
    <div class="signature-line"></div>
    <p><strong>Firma del banco</strong></p>
    <p>Tienda / Soporte Banca Comercial:</p>
    <div class="field-box"></div>
  </div>
</div>

<p class="note" style="text-align:center">Documento generado automáticamente el {{.Date}}</p>
</body>
</html>
`

const recaudacionHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Anexo Recaudación - {{.Annex.RazonSocial}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="header">
  <h1>ANEXO SERVICIO DE RECAUDACIÓN</h1>
  <p>Complete este anexo para afiliarse al servicio de Recaudación de Interbank.</p>
</div>

<div class="section-title">Información de la Empresa</div>
<div class="field-row">
  <span class="field-label">Código Único:</span>
  <div class="field-box-small">{{.Annex.CodigoUnico}}</div>
  <span class="field-label">Punto de Servicio:</span>
  <div class="field-box-small">{{.Annex.PuntoServicio}}</div>
</div>
<div class="field-row">
  <span class="field-label">Nombre o Razón Social:</span>
  <div class="field-box-small">{{.Annex.RazonSocial}}</div>
  <span class="field-label">RUC:</span>
  <div class="field-box-small">{{.Annex.TaxID}}</div>
</div>
<div class="field-row">
  <span class="field-label">Giro de la Empresa:</span>
  <div class="field-box">{{.Annex.GiroEmpresa}}</div>
</div>

<div class="section-title">Configuración del Servicio</div>
<div class="checkbox-section">
  <span class="checkbox">{{mark .Annex.IsNuevo}}</span> Nuevo Servicio
  <span class="checkbox">{{mark .Annex.IsModificacion}}</span> Modificación
</div>
<div class="field-row">
  <span class="field-label">Nombre Comercial del Cliente:</span>
  <div class="field-box-small">{{.Annex.NombreComercial}}</div>
  <span class="field-label">Número de Servicio:</span>
  <div class="field-box-small">{{.Annex.NumeroServicio}}</div>
</div>
<div class="field-row">
  <span class="field-label">Nombre de Servicio:</span>
  <div class="field-box-small">{{.Annex.NombreServicio}}</div>
</div>

<div class="section-title">Características Generales del Servicio</div>
<div class="checkbox-section">
  <span class="field-label">Envío de Archivo de Conciliación:</span>
  <span class="checkbox">{{mark .Annex.EnvioSFTP}}</span> SFTP
  <span class="checkbox">{{mark .Annex.EnvioCorreo}}</span> Correo Electrónico
</div>
<div class="checkbox-section">
  <span class="field-label">Indicador de Carga:</span>
  <span class="checkbox">{{mark .Annex.Carga9PM}}</span> Hasta las 9 p.m.
  <span class="checkbox">{{mark .Annex.Carga24Horas}}</span> 24 horas
</div>
<div class="field-row">
  <span class="field-label">Horario de Recaudación:</span>
  <div class="field-box-small">{{.Annex.HorarioRecaudacion}}</div>
</div>

<div class="section-title">Características Puntuales del Servicio</div>
<div class="checkbox-section">
  <span class="field-label">Moneda de Cobranza:</span>
  <span class="checkbox">{{mark .Annex.MonedaSoles}}</span> Soles
  <span class="checkbox">{{mark .Annex.MonedaDolares}}</span> Dólares
</div>
<div class="checkbox-section">
  <span class="field-label">Canal de Cobro:</span><br>
  <span class="checkbox">{{mark .Annex.CanalAppBanca}}</span> Canales Electrónicos (App Interbank / Banca por Internet)<br>
  <span class="checkbox">{{mark .Annex.CanalAgenteLima}}</span> Interbank Agente Lima
  <span class="checkbox">{{mark .Annex.CanalAgenteProvincias}}</span> Interbank Agente Provincias<br>
  <span class="checkbox">{{mark .Annex.CanalAgenteSupermercados}}</span> Interbank Agente Supermercados
  <span class="field-label">Otro:</span>
  <div class="field-box-small" style="display:inline-block">{{.Annex.CanalOtros}}</div>
</div>
<div class="checkbox-section">
  <span class="field-label">Tipo de Abono en Cuenta:</span>
  <span class="checkbox">{{mark .Annex.AbonoLineaDetallado}}</span> En línea detallado
  <span class="checkbox">{{mark .Annex.AbonoLineaConsolidado}}</span> En línea consolidado
  <span class="checkbox">{{mark .Annex.AbonoFinalDiaConsolidado}}</span> Fin de día consolidado
</div>

<div class="section-title">Tipos de Pago</div>
<div class="checkbox-section">
  <span class="checkbox">{{mark .Annex.AceptaPagosVencidos}}</span> ¿Acepta pagos vencidos?<br>
  <span class="checkbox">{{mark .Annex.ObligaPagosSucesivos}}</span> ¿Obliga pagos sucesivos?<br>
  <span class="checkbox">{{mark .Annex.AceptaPagosParciales}}</span> ¿Acepta pagos parciales?
</div>

<div class="section-title">Configuración del Deudor</div>
<div class="field-row">
  <span class="field-label">Código Identificador del Deudor (Referencia):</span>
  <div class="field-box-small">{{.Annex.CodigoIdentificadorDeudor}}</div>
  <span class="field-label">Número de Caracteres del Código:</span>
  <div class="field-box-small">{{.Annex.NumeroCaracteresDeudor}}</div>
</div>

<div class="section-title">Estructura de Comisiones</div>
<div class="field-row"><span class="field-label">Interbank Agente - Empresa - Soles (S/):</span><div class="field-box-small">{{.Annex.ComisionAgenteEmpresaSoles}}</div></div>
<div class="field-row"><span class="field-label">Interbank Agente - Empresa - Dólares (US$):</span><div class="field-box-small">{{.Annex.ComisionAgenteEmpresaDolares}}</div></div>
<div class="field-row"><span class="field-label">Interbank Agente - Usuario (Lima y Provincias):</span><div class="field-box-small">{{.Annex.ComisionAgenteUsuarioLima}}</div></div>
<div class="field-row"><span class="field-label">Canales Electrónicos - Empresa - Soles (S/):</span><div class="field-box-small">{{.Annex.ComisionElectronicosEmpresaSoles}}</div></div>
<div class="field-row"><span class="field-label">Otros (1):</span><div class="field-box-small">{{.Annex.ComisionElectronicosOtro1}}</div></div>
<div class="field-row"><span class="field-label">Otros (2):</span><div class="field-box-small">{{.Annex.ComisionElectronicosOtro2}}</div></div>

<div class="section-title">Cuentas para Abonos de Cobranzas</div>
<table>
  <thead><tr><th>Porcentaje (%)</th><th>Tipo de Cuenta</th><th>Moneda</th><th>Número de Cuenta</th></tr></thead>
  <tbody>
  {{range .Annex.CuentasCobranzas}}<tr><td>{{.Percentage}}</td><td>{{.Kind}}</td><td>{{.Currency}}</td><td>{{.Number}}</td></tr>
  {{else}}<tr><td></td><td></td><td></td><td></td></tr>
  {{end}}</tbody>
</table>

<div class="section-title">Cuentas para Cargos por Comisiones</div>
<table>
  <thead><tr><th>Porcentaje (%)</th><th>Tipo de Cuenta</th><th>Moneda</th><th>Número de Cuenta</th></tr></thead>
  <tbody>
  {{range .Annex.CuentasComisiones}}<tr><td>{{.Percentage}}</td><td>{{.Kind}}</td><td>{{.Currency}}</td><td>{{.Number}}</td></tr>
  {{else}}<tr><td></td><td></td><td></td><td></td></tr>
  {{end}}</tbody>
</table>

<div class="section-title">Información de Contacto y Correos</div>
<div class="field-row">
  <span class="field-label">Correos para el Envío del Archivo de Consolidación:</span>
  <div class="field-box">{{.Annex.CorreosConsolidacion}}</div>
</div>
<div class="field-row">
  <span class="field-label">Correos para Recepción de Confirmación de Carga:</span>
  <div class="field-box">{{.Annex.CorreosConfirmacion}}</div>
</div>
<div class="field-row">
  <span class="field-label">Nombre Contacto Servicio de Recaudación:</span>
  <div class="field-box">{{.Annex.NombreContacto}}</div>
</div>
<div class="field-row">
  <span class="field-label">Correo Electrónico:</span>
  <div class="field-box-small">{{.Annex.CorreoContacto}}</div>
  <span class="field-label">Teléfono:</span>
  <div class="field-box-small">{{.Annex.TelefonoContacto}}</div>
</div>

<div class="section-title">Recaudación de la Empresa</div>
<div class="checkbox-section">
  <span class="field-label">Tipo de Recaudación:</span>
  <span class="checkbox">{{mark .Annex.RecaudacionExclusiva}}</span> Exclusiva
  <span class="checkbox">{{mark .Annex.RecaudacionCompartida}}</span> Compartida
</div>
<div class="field-row">
  <span class="field-label">Número de Clientes / Socios / Alumnos:</span>
  <div class="field-box-small">{{.Annex.NumeroClientes}}</div>
</div>
<div class="field-row">
  <span class="field-label">Recaudación Anual Promedio - En Soles (S/):</span>
  <div class="field-box-small">{{.Annex.RecaudacionAnualSoles}}</div>
  <span class="field-label">En Dólares (US$):</span>
  <div class="field-box-small">{{.Annex.RecaudacionAnualDolares}}</div>
</div>

<div class="signature-section">
  <div class="signature-box">
    <div class="signature-line"></div>
    <p><strong>Firma Representante Legal del Cliente</strong></p>
    <p>Nombres y Apellidos:</p>
    <div class="field-box">{{.Annex.NombreContacto}}</div>
  </div>
  <div class="signature-box">
    <div class="signature-line"></div>
    <p><strong>Firma del banco</strong></p>
    <p>Tienda / Soporte Banca Comercial:</p>
    <div class="field-box"></div>
  </div>
</div>

<p class="note" style="text-align:center">Documento generado automáticamente el {{.Date}}</p>
</body>
</html>
`
