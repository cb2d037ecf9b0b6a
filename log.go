package override

import "net/url"

// LogMaskVal replaces sensitive values before they reach a log line.
const LogMaskVal = "xxxxxx"

// Mask squashes every value stored under key in vals into a single [LogMaskVal].
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals.Set(key, LogMaskVal)
}
