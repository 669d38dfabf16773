package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/useragent"
)

const (
	uaChromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaIPhoneSafari  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaIPad          = "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"
	uaGooglebot     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestParse_Defaults(t *testing.T) {
	p := useragent.NewParser()
	want := entity.ClientInfo{OS: "unknown", Browser: "unknown", DeviceType: "desktop"}

	for _, raw := range []string{"", "   ", "basura", "%%%///;;;", "()()()"} {
		assert.Equal(t, want, p.Parse(raw), "user-agent %q", raw)
	}
}

func TestParse_ChromeWindows(t *testing.T) {
	info := useragent.NewParser().Parse(uaChromeWindows)
	assert.Equal(t, "Chrome", info.Browser)
	assert.Contains(t, info.OS, "Windows")
	assert.Equal(t, entity.DeviceDesktop, info.DeviceType)
}

func TestParse_IPhone(t *testing.T) {
	info := useragent.NewParser().Parse(uaIPhoneSafari)
	assert.Equal(t, "Safari", info.Browser)
	assert.Equal(t, entity.DeviceMobile, info.DeviceType)
	assert.NotEqual(t, entity.UnknownClient, info.OS)
}

func TestParse_Tablet(t *testing.T) {
	info := useragent.NewParser().Parse(uaIPad)
	assert.Equal(t, entity.DeviceTablet, info.DeviceType)
}

func TestParse_Bot(t *testing.T) {
	info := useragent.NewParser().Parse(uaGooglebot)
	assert.Equal(t, entity.DeviceBot, info.DeviceType)
}
