package errors

import stdErrors "errors"

// DumpInfo captures the unwrapped shape of an error for structured logging.
type DumpInfo struct {
	TopMessage string
	Code       string
	Chain      []string
}

// Dump walks the error chain and returns loggable metadata.
func Dump(err error) DumpInfo {
	info := DumpInfo{}
	if err == nil {
		return info
	}
	info.TopMessage = err.Error()
	if typed := As(err); typed != nil {
		info.Code = string(typed.Code())
	}
	for cur := err; cur != nil; cur = stdErrors.Unwrap(cur) {
		info.Chain = append(info.Chain, cur.Error())
	}
	return info
}
