// Package useragent traduce cabeceras User-Agent a los datos de cliente que guarda una visita.
package useragent

import (
	"strings"

	ua "github.com/mssola/useragent"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// Parser implementa card.ClientParser sobre mssola/useragent.
type Parser struct{}

// NewParser construye el parser.
func NewParser() *Parser { return &Parser{} }

// Parse nunca falla: lo que no se pueda detectar queda en "unknown" (OS, navegador)
// o "desktop" (dispositivo).
func (p *Parser) Parse(userAgent string) (info entity.ClientInfo) {
	info = entity.ClientInfo{
		OS:         entity.UnknownClient,
		Browser:    entity.UnknownClient,
		DeviceType: entity.DeviceDesktop,
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return info
	}
	defer func() {
		// La librería no debería entrar en pánico con cadenas raras; si ocurre, se quedan los defaults.
		if recover() != nil {
			info = entity.ClientInfo{
				OS:         entity.UnknownClient,
				Browser:    entity.UnknownClient,
				DeviceType: entity.DeviceDesktop,
			}
		}
	}()

	parsed := ua.New(userAgent)

	if name := strings.TrimSpace(parsed.OSInfo().Name); name != "" {
		info.OS = name
	}
	// Sin el prefijo Mozilla/ la librería devuelve el primer token como "navegador";
	// eso solo es fiable para bots conocidos.
	if name, _ := parsed.Browser(); name != "" && (parsed.Mozilla() != "" || parsed.Bot()) {
		info.Browser = name
	}
	info.DeviceType = deviceType(parsed, userAgent)
	return info
}

func deviceType(parsed *ua.UserAgent, raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case parsed.Bot():
		return entity.DeviceBot
	case strings.Contains(lower, "ipad"), strings.Contains(lower, "tablet"),
		strings.Contains(lower, "android") && !strings.Contains(lower, "mobile"):
		return entity.DeviceTablet
	case parsed.Mobile():
		return entity.DeviceMobile
	default:
		return entity.DeviceDesktop
	}
}
