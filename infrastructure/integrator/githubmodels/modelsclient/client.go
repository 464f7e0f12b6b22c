package modelsclient

import (
	"context"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	githubmodelsdomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/githubmodels/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRequestTimeout = 20 * time.Second
	connectTimeout        = 10 * time.Second
	maxResponseBytes      = 1 << 20
)

type Client interface {
	CreateChatCompletion(ctx context.Context, req githubmodelsdomain.ChatCompletionRequest) ([]byte, error)
}

type ModelsClient struct {
	httpClient *http.Client
	config     config.LLM
}

func NewClient(cfg *config.Config) Client {
	timeout := defaultRequestTimeout
	if cfg.LLM.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	}

	return &ModelsClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: connectTimeout}).DialContext,
				TLSHandshakeTimeout: connectTimeout,
			},
		},
		config: cfg.LLM,
	}
}
