// export_test.go exports private functions for white-box testing.
package logger

// FormatChainExported exports the error chain formatter for testing.
var FormatChainExported = formatChain
