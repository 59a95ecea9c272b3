package utils

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// EaseFunc maps progress t in [0, 1] to eased progress in [0, 1].
//
// Reference curves: https://easings.net/
type EaseFunc func(t float64) float64

// EaseLinear: f(t) = t
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad starts slow and speeds up.
// f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad starts fast and slows down.
// f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInCubic: f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic: f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic is slow at both ends.
//
//	t < 0.5:  f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutExpo: f(t) = 1 - 2^(-10t), exactly 1 at t = 1.
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp interpolates between a and b; t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

var easeByName = map[string]EaseFunc{
	"linear":       EaseLinear,
	"quadraticin":  EaseInQuad,
	"quadraticout": EaseOutQuad,
	"cubicin":      EaseInCubic,
	"cubicout":     EaseOutCubic,
	"cubicinout":   EaseInOutCubic,
	"expoout":      EaseOutExpo,
}

// EaseByName resolves a config name such as "quadraticIn" (case-insensitive)
// to its easing function.
func EaseByName(name string) (EaseFunc, error) {
	fn, ok := easeByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %s)", name, strings.Join(EaseNames(), ", "))
	}
	return fn, nil
}

// EaseNames returns the accepted easing names, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easeByName))
	for name := range easeByName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
