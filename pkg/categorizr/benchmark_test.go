package categorizr_test

import (
	"testing"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

var (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariMobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	androidTabletUA = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	botUA           = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	unknownUA       = "curl/7.64.1"
)

// Helper variable to avoid compiler optimizations removing the function call
var result categorizr.Device

func benchmarkDetect(b *testing.B, ua string) {
	engine := categorizr.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result = engine.Detect(ua)
	}
}

func BenchmarkDetect_ChromeDesktop(b *testing.B) { benchmarkDetect(b, chromeDesktopUA) }

func BenchmarkDetect_SafariMobile(b *testing.B) { benchmarkDetect(b, safariMobileUA) }

func BenchmarkDetect_AndroidTablet(b *testing.B) { benchmarkDetect(b, androidTabletUA) }

// Robots run through the whole cascade.
func BenchmarkDetect_Bot(b *testing.B) { benchmarkDetect(b, botUA) }

func BenchmarkDetect_Unknown(b *testing.B) { benchmarkDetect(b, unknownUA) }

func BenchmarkDetect_Parallel(b *testing.B) {
	engine := categorizr.New()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var d categorizr.Device
		for pb.Next() {
			d = engine.Detect(chromeDesktopUA)
		}
		_ = d
	})
}
