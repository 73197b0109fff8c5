package config

import "testing"

func TestLoadPerServiceDefaults(t *testing.T) {
	cases := []struct {
		service     string
		httpPort    string
		metricsPort string
	}{
		{"ingest-service", "8081", "9096"},
		{"stats-worker", "", "9097"},
		{"feed-simulator", "", "9094"},
		{"api-gateway", "8088", "9093"},
		{"query-service", "8080", "9095"},
		{"", "8080", "9095"},
	}

	for _, tc := range cases {
		t.Run("svc="+tc.service, func(t *testing.T) {
			t.Setenv("SERVICE_NAME", tc.service)
			cfg := Load()
			if cfg.HTTPPort != tc.httpPort {
				t.Errorf("HTTPPort = %q, want %q", cfg.HTTPPort, tc.httpPort)
			}
			if cfg.MetricsPort != tc.metricsPort {
				t.Errorf("MetricsPort = %q, want %q", cfg.MetricsPort, tc.metricsPort)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "query-service")
	t.Setenv("HTTP_PORT", "18080")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("REDIS_PUBSUB_CHANNEL", "other_channel")

	cfg := Load()
	if cfg.HTTPPort != "18080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.KafkaBrokers != "kafka-1:9092,kafka-2:9092" {
		t.Errorf("KafkaBrokers = %q", cfg.KafkaBrokers)
	}
	if cfg.RedisPubSubChannel != "other_channel" {
		t.Errorf("RedisPubSubChannel = %q", cfg.RedisPubSubChannel)
	}
}

func TestLoadTopicDefaults(t *testing.T) {
	cfg := Load()
	if cfg.TopicMatchEvents != "match_events_recorded" {
		t.Errorf("TopicMatchEvents = %q", cfg.TopicMatchEvents)
	}
	if cfg.TopicMatchEventsDLQ == "" {
		t.Error("TopicMatchEventsDLQ is empty")
	}
}
