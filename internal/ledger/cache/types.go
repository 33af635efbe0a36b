package cache

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records cache lookups.
	Metrics interface {
		ObserveLookup(hit bool, err error)
	}
)
