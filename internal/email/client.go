package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"

	"github.com/wneessen/go-mail"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}

	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		// Añadir contexto útil al error sin exponer credenciales
		return fmt.Errorf("error al enviar correo (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// EnviarConfirmacionCita envía el correo de confirmación al agendar una cita
func (c *Client) EnviarConfirmacionCita(destinatario, nombrePaciente string, cita *domain.Cita) error {
	subject := fmt.Sprintf("Confirmación de Cita - %s", c.fromName)
	htmlBody := generarHTMLCita(
		"Cita Confirmada",
		fmt.Sprintf("Hola %s, tu cita fue agendada con éxito.", nombrePaciente),
		cita,
	)

	return c.SendEmail(destinatario, subject, htmlBody)
}

// EnviarRecordatorioCita envía el recordatorio de una cita próxima
func (c *Client) EnviarRecordatorioCita(destinatario, nombrePaciente string, cita *domain.Cita) error {
	subject := fmt.Sprintf("Recordatorio de Cita - %s", c.fromName)
	htmlBody := generarHTMLCita(
		"Recordatorio de Cita",
		fmt.Sprintf("Hola %s, te recordamos tu cita próxima.", nombrePaciente),
		cita,
	)

	return c.SendEmail(destinatario, subject, htmlBody)
}

// generarHTMLCita genera el HTML de los correos de citas
func generarHTMLCita(titulo, saludo string, cita *domain.Cita) string {
	notasHTML := ""
	if cita.Notas != nil && *cita.Notas != "" {
		notasHTML = fmt.Sprintf(`
									<tr>
										<td style="padding: 8px 0;"><strong>Notas:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
		`, *cita.Notas)
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>%s</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<!-- Contenedor principal -->
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
					<!-- Header -->
					<tr>
						<td style="background: linear-gradient(135deg, #1976d2 0%%, #26a69a 100%%); padding: 40px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">%s</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0; font-size: 16px;">%s</p>
						</td>
					</tr>

					<!-- Contenido -->
					<tr>
						<td style="padding: 40px 30px;">
							<div style="background-color: #f8f9fa; border-left: 4px solid #1976d2; padding: 20px; margin-bottom: 30px;">
								<h2 style="margin: 0 0 15px 0; color: #333; font-size: 20px;">Detalles de la Cita</h2>
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Fecha:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Hora:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Servicio:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									%s
								</table>
							</div>

							<!-- Información adicional -->
							<div style="padding: 20px; background-color: #fff3cd; border-radius: 8px; border-left: 4px solid #ffc107;">
								<h4 style="margin: 0 0 10px 0; color: #856404;">Información Importante</h4>
								<ul style="margin: 0; padding-left: 20px; color: #856404;">
									<li>Llegar 15 minutos antes de la hora agendada</li>
									<li>Traer documento de identidad y exámenes recientes</li>
									<li>Para reprogramar, comunicarse con la recepción</li>
								</ul>
							</div>
						</td>
					</tr>

					<!-- Footer -->
					<tr>
						<td style="background-color: #f8f9fa; padding: 30px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0 0 10px 0; color: #666; font-size: 14px;">
								Si tiene alguna pregunta, no dude en contactarnos
							</p>
							<p style="margin: 0; color: #999; font-size: 12px;">
								Este es un correo automático, por favor no responder directamente
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		titulo,
		titulo,
		saludo,
		cita.FechaHora.Format("02/01/2006"),
		cita.FechaHora.Format("15:04"),
		cita.Servicio,
		notasHTML,
	)

	return html
}
