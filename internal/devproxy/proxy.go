// Package devproxy forwards the web client's /api calls to the local
// functions emulator during development.
package devproxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"heartbank/pkg/types"

	"github.com/sirupsen/logrus"
)

const Prefix = "/api"

// FunctionsTarget is the emulator base URL functions are served from,
// e.g. http://localhost:5001/my-project/us-central1.
func FunctionsTarget(config *types.Config) (*url.URL, error) {
	if config.FirebaseProjectID == "" {
		return nil, fmt.Errorf("set FIREBASE_PROJECT_ID")
	}

	return url.Parse(fmt.Sprintf("http://%s:%d/%s/%s",
		config.EmulatorHost,
		config.FunctionsEmulatorPort,
		config.FirebaseProjectID,
		config.FunctionsRegion,
	))
}

// StripPrefix removes the leading /api segment. ok is false for paths outside it.
func StripPrefix(path string) (rest string, ok bool) {
	if path == Prefix {
		return "/", true
	}
	if !strings.HasPrefix(path, Prefix+"/") {
		return "", false
	}
	return strings.TrimPrefix(path, Prefix), true
}

type Proxy struct {
	logger *logrus.Logger
	proxy  *httputil.ReverseProxy
	target *url.URL
}

func New(target *url.URL, logger *logrus.Logger) *Proxy {
	p := &Proxy{logger: logger, target: target}
	p.proxy = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.WithError(err).WithField("path", r.URL.Path).Error("emulator request failed")
			http.Error(w, "emulator unavailable", http.StatusBadGateway)
		},
	}
	return p
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest, ok := StripPrefix(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	started := time.Now()

	out := r.Clone(r.Context())
	out.URL.Path = rest
	out.URL.RawPath = ""
	p.proxy.ServeHTTP(w, out)

	p.logger.WithFields(logrus.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"upstream":    p.target.String() + rest,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("proxied")
}
