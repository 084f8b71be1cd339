// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modePermissive = "permissive"
	modeStrict     = "strict"
	resultOK       = "ok"
)

var (
	templatesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cmdline_templates_parsed_total",
			Help: "Total number of option templates parsed, by mode and result",
		},
		[]string{"mode", "result"},
	)

	tokensDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cmdline_template_tokens_dropped_total",
			Help: "Total number of unrecognized template tokens dropped by the parser",
		},
	)

	validations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cmdline_validations_total",
			Help: "Total number of declaration validations, by status",
		},
		[]string{"status"},
	)
)
