// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-htlc/observability"
	"github.com/stretchr/testify/suite"
)

type ObservabilityTestSuite struct {
	suite.Suite
}

func TestRunObservabilityTestSuite(t *testing.T) {
	suite.Run(t, new(ObservabilityTestSuite))
}

func (s *ObservabilityTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func (s *ObservabilityTestSuite) Test_ConfigureLogger_FiltersByLevel() {
	out := &bytes.Buffer{}
	observability.ConfigureLogger(zerolog.InfoLevel, out, false)

	log.Debug().Msg("hidden")
	log.Info().Str("orderID", "order-1").Msg("visible")

	entry := make(map[string]interface{})
	err := json.Unmarshal(out.Bytes(), &entry)
	s.Nil(err)
	s.Equal("visible", entry["message"])
	s.Equal("order-1", entry["orderID"])
}

func (s *ObservabilityTestSuite) Test_InitMetricProvider_WithoutCollector() {
	mp, err := observability.InitMetricProvider(context.Background(), "", "sprinter-htlc")

	s.Nil(err)
	s.NotNil(mp.Meter("test"))
	s.Nil(mp.Shutdown(context.Background()))
}

func (s *ObservabilityTestSuite) Test_InitMetricProvider_InvalidCollectorURL() {
	_, err := observability.InitMetricProvider(context.Background(), "http://[::1", "sprinter-htlc")

	s.NotNil(err)
}
