// Package param defines typed, named filter parameters.
//
// A filter declares the keys it accepts with [Spec] values. A live
// configuration is a [Config]: a map from key to [Settings], where each
// Settings carries the title, range and current value of one parameter.
//
// Values are a tagged union ([Value]) over the parameter types, so a color
// can never be stored in a float slot. The typed accessor families on
// Config (Float/SetFloat, Color/SetColor, Position/SetPosition,
// Vector/SetVector) return [ErrUnknownKey] or [ErrTypeMismatch] instead of
// coercing. Callers that must not fail, such as UI sliders racing a filter
// switch, use the [NotSet] sentinel returned alongside those errors.
package param
