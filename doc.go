// Package calculator evaluates arithmetic on the keys of a pocket calculator.
//
// An expression is made of decimal numbers, the operators + - * /, and
// parentheses. "4 + 4 * 2 / (1 - 5)" is 2. There is no unary minus; "-1" is
// not an expression. Arithmetic is done in float32, and division by zero gives
// an infinity or NaN instead of an error.
//
// Evaluation happens in three stages. Parse splits the text into tokens,
// Postfix reorders them into reverse Polish notation, and Evaluate runs them
// on a stack. Resolve does all three and formats the result for display.
package calculator
