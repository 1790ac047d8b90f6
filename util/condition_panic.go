package util

import "fmt"

// PanicIf panic with a formatted error when cond holds; reserved for caller
// contract violations, recoverable failures go through error returns
func PanicIf(cond bool, format string, v ...interface{}) {
	if !cond {
		return
	}
	panic(fmt.Errorf(format, v...))
}

// PanicIfErr panic when err is not nil, keeping err detail ahead of the
// formatted context
func PanicIfErr(err error, format string, v ...interface{}) {
	if err == nil {
		return
	}
	errStr := fmt.Sprintf("err:%v ", err)
	panic(fmt.Errorf(errStr+format, v...))
}
