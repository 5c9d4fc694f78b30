// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"time"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// MetricsProvider is the interface that exposes the communication with the metrics system
// this interface should be implemented by the different providers we want to include
type MetricsProvider interface {
	// ObserveRequestDuration stores the elapsed time for a request made to
	// the source or destination service
	ObserveRequestDuration(service, method, handler, statusCode string, elapsed float64)
	// IncreaseCacheHits stores the number of responses served from the
	// response cache. The information is stored using the service, HTTP method and the request handler
	IncreaseCacheHits(service, method, handler string)
	// IncreaseCacheMisses stores the number of responses fetched from the network
	IncreaseCacheMisses(service, method, handler string)

	// ObserveStageDuration stores the elapsed time for a migration stage
	ObserveStageDuration(name string, elapsed float64)
	// IncreaseStageErrors stores the number of failed migration stages
	IncreaseStageErrors(name string)

	// IncreaseMigratedItems counts one migrated or failed item of a kind
	IncreaseMigratedItems(kind, result string)
}

func elapsedSeconds(start time.Time, end time.Time) float64 {
	return float64(end.Sub(start)) / float64(time.Second)
}
