// Package config loads the vec configuration file.
//
// The file is YAML. It is validated against [Schema] before it is decoded,
// and every key it omits keeps its [Default] value:
//
//	clockName: clk
//	lowActiveSuffix: _n
//	table:
//	  captions:
//	    in: Input
//	    out: Output
//	symbol:
//	  scale: 3
//
// Without an explicit path, [Load] reads the first existing file of
// [SearchPaths].
package config
