package translate

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Backend selects which translation provider annotates the words.
type Backend string

const (
	BackendGoogle Backend = "google"
	BackendBaidu  Backend = "baidu"
	BackendStatic Backend = "static"
	BackendOpenAI Backend = "openai"
)

var (
	_ pflag.Value = (*Backend)(nil)

	// AllBackends lists the selectable backends in menu order.
	AllBackends = []Backend{BackendGoogle, BackendBaidu, BackendStatic, BackendOpenAI}
)

func (b *Backend) Set(val string) error {
	for _, backend := range AllBackends {
		if val == string(backend) {
			*b = backend
			return nil
		}
	}
	return fmt.Errorf("invalid backend: %s", val)
}

func (b Backend) String() string {
	return string(b)
}

func (b *Backend) Type() string {
	return "Backend"
}
