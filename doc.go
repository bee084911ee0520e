/*
Package gostmt parses bank and credit card statement exports into typed
transaction records.

gostmt reads the OFX/QFX interchange format in both of its historical
syntaxes: the strict XML dialect (2.x) and the SGML tag soup (1.x), where
banks routinely omit closing tags. Both syntaxes are normalized into one
intermediate tree before extraction, so callers see the same ordered
transaction sequence regardless of which dialect produced the file.

*/
package gostmt
