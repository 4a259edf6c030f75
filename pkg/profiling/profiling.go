package profiling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"

	"github.com/skybook/skybook-web/config"
	"github.com/skybook/skybook-web/pkg/logger"
)

const defaultUploadInterval = 15 * time.Second

// The page host is idle most of the time, so block and mutex profiles are opt-in.
var defaultProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

var sampleTypes = map[string][]pyroscope.ProfileType{
	"cpu":           {pyroscope.ProfileCPU},
	"alloc_space":   {pyroscope.ProfileAllocSpace},
	"alloc_objects": {pyroscope.ProfileAllocObjects},
	"inuse_space":   {pyroscope.ProfileInuseSpace},
	"inuse_objects": {pyroscope.ProfileInuseObjects},
	"goroutines":    {pyroscope.ProfileGoroutines},
	"mutex":         {pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration},
	"block":         {pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration},
}

// InitProfiler starts pushing profiles of the page host to pyroscope. The
// returned func stops the profiler; it is a no-op when profiling is disabled.
func InitProfiler(cfg config.ProfilingConfig, obs config.ObservabilityConfig, environment string) (func(), error) {
	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled")
		return func() {}, nil
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("profiling endpoint is required when profiling is enabled")
	}

	types, err := parseProfileTypes(cfg.SampleTypes)
	if err != nil {
		return nil, err
	}

	upload := time.Duration(cfg.UploadIntervalSeconds) * time.Second
	if upload <= 0 {
		upload = defaultUploadInterval
	}

	name := applicationName(cfg.AppName)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: name,
		ServerAddress:   endpoint,
		Tags:            tags(obs, environment),
		UploadRate:      upload,
		ProfileTypes:    types,
		Logger:          logger.Log.Named("pyroscope").Sugar(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	logger.Info("Continuous profiling initialized",
		zap.String("application_name", name),
		zap.String("endpoint", endpoint),
		zap.Int("profile_types", len(types)),
		zap.Duration("upload_interval", upload),
	)

	return func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("Failed to stop profiler", zap.Error(stopErr))
		}
	}, nil
}

// WithRoute runs fn with the page route attached to its CPU samples.
func WithRoute(ctx context.Context, route string, fn func(context.Context)) {
	pyroscope.TagWrapper(ctx, pyroscope.Labels("route", route), fn)
}

func parseProfileTypes(value string) ([]pyroscope.ProfileType, error) {
	if strings.TrimSpace(value) == "" {
		return defaultProfileTypes, nil
	}

	var types []pyroscope.ProfileType
	seen := make(map[pyroscope.ProfileType]bool)
	for _, raw := range strings.Split(value, ",") {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		mapped, ok := sampleTypes[key]
		if !ok {
			return nil, fmt.Errorf("unsupported O11Y_PROFILING_SAMPLE_TYPES value: %q", key)
		}
		for _, t := range mapped {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}

	if len(types) == 0 {
		return defaultProfileTypes, nil
	}
	return types, nil
}

func applicationName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return "skybook-web"
}

func tags(obs config.ObservabilityConfig, environment string) map[string]string {
	out := map[string]string{"environment": environment}
	for key, value := range map[string]string{
		"service_name":    obs.ServiceName,
		"namespace":       obs.ServiceNamespace,
		"service_version": obs.ServiceVersion,
		"instance":        obs.ServiceInstanceID,
	} {
		if value != "" {
			out[key] = value
		}
	}
	return out
}
