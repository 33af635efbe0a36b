package syncer

import "time"

const (
	defaultParallelThreshold uint64 = 10
	defaultBatchLimit        uint64 = 5000

	defaultIdleInterval    = 60 * time.Second
	defaultBackoffInterval = 10 * time.Second
)
