// Package acrotex converts CSV acronym lists into LaTeX acro declarations.
//
// Input is a comma-separated file with a header row naming at least the id and
// long columns (short, description and tag are optional). Each row becomes one
// \DeclareAcronym block. The conversion is one-shot: the whole input is loaded,
// every entry is formatted, and the blocks are written in input order.
//
// Core properties:
//   - Explicit optional fields instead of "missing" sentinels
//   - Required columns validated at load time
//   - Pure, deterministic formatting
//   - Optional LaTeX escaping of reserved characters
//
// Example:
//
//	res, err := acrotex.Convert(ctx, acrotex.ConvertRequest{
//		Reader: input,
//		Writer: output,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Count, "acronyms")
//
// Formatting can be customized using FormatOptions such as escaping and
// parallel formatting.
package acrotex
