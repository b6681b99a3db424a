// Package devicectx attaches the detected device category to HTTP requests.
//
// Middleware reads the User-Agent header, classifies it once per request and
// stores the resulting categorizr.Device in the request context:
//
//	detector := devicecache.NewDetector(categorizr.New(), store)
//	r.Use(devicectx.Middleware(detector, devicectx.WithResponseHeaders()))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    if devicectx.DeviceFromContext(r.Context()).IsTablet() {
//	        // ...
//	    }
//	}
//
// Use EngineDetector to plug an engine in without caching. LoggerExtractor
// adds the category to every log record written with the request context.
package devicectx
