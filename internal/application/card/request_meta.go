package card

import (
	"net"
	"strings"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// RequestMeta datos del cliente que abrió la tarjeta.
type RequestMeta struct {
	UserAgent string
	Source    string // qr | link
	IPAddress string
}

// NewRequestMeta normaliza los datos crudos de la petición:
//   - source es "qr" solo si la pista es literalmente "qr"; cualquier otro valor es "link".
//   - la IP prefiere la primera entrada de X-Forwarded-For, luego la dirección del peer, luego "".
func NewRequestMeta(userAgent, sourceHint, forwardedFor, remoteAddr string) RequestMeta {
	return RequestMeta{
		UserAgent: userAgent,
		Source:    NormalizeSource(sourceHint),
		IPAddress: clientIP(forwardedFor, remoteAddr),
	}
}

// NormalizeSource reduce la pista de origen al enum qr | link.
func NormalizeSource(hint string) string {
	if hint == entity.VisitSourceQR {
		return entity.VisitSourceQR
	}
	return entity.VisitSourceLink
}

func clientIP(forwardedFor, remoteAddr string) string {
	for _, part := range strings.Split(forwardedFor, ",") {
		if ip := strings.TrimSpace(part); ip != "" {
			return ip
		}
	}
	remoteAddr = strings.TrimSpace(remoteAddr)
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
