// Package metrics exposes application metrics collectors.
package metrics

const namespace = "blockinsight7000"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown[T ~string](v T) string {
	if v == "" {
		return "unknown"
	}
	return string(v)
}
