// Package mathparser implements a single-precision calculator for arithmetic
// expressions written as text.
//
// Expressions use decimal numbers, the binary operators + - * / ^, unary + and
// -, parentheses, and the functions sin, cos, tan, and log. Functions take
// literal numbers as arguments and are written either with a bang, as in
// "log!100,10", or with parentheses, as in "log(100, 10)". log takes a value
// and a base; the others take one argument.
//
// Evaluation runs in three stages. ResolveUnary marks the + and - characters
// that are signs rather than operators, ToPostfix converts the infix text to a
// space-separated postfix string, and EvalPostfix reduces the postfix string
// to a number. Eval composes all three. Each call is independent, so any
// function in the package may be used concurrently.
//
// A unary + or - is recognized only when it is immediately followed by a digit
// and preceded by something other than a digit or a close parenthesis. So
// "50 * -45" is -2250, while "-(2)" is not valid notation.
//
package mathparser
