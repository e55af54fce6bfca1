// Package bmi computes Body Mass Index from a weight in kilograms and a height
// in centimeters and classifies the result.
package bmi

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrNotANumber     = errors.New("weight and height must be numbers")
	ErrNonPositive    = errors.New("weight and height must be positive")
	ErrDivisionByZero = errors.New("height is zero")
	ErrOutOfRange     = errors.New("BMI is too large to represent")
)

// Category is a BMI classification.
type Category string

const (
	Underweight   Category = "Underweight"
	HealthyWeight Category = "Healthy Weight"
	Overweight    Category = "Overweight"
	Obese         Category = "Obese"
)

// Result is one BMI calculation.
type Result struct {
	Value    float64
	Category Category
}

var validNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Calculate parses the two text fields and computes the BMI.
func Calculate(weightText, heightText string) (Result, error) {
	weight, err := parseField(weightText)
	if err != nil {
		return Result{}, fmt.Errorf("weight: %w", err)
	}
	heightCm, err := parseField(heightText)
	if err != nil {
		return Result{}, fmt.Errorf("height: %w", err)
	}
	return Compute(weight, heightCm)
}

// Compute derives the BMI from already parsed values.
func Compute(weight, heightCm float64) (Result, error) {
	if weight <= 0 || heightCm <= 0 {
		return Result{}, ErrNonPositive
	}

	heightM := heightCm / 100
	// The square underflows to zero for tiny positive heights.
	sq := heightM * heightM
	if sq == 0 {
		return Result{}, ErrDivisionByZero
	}

	v := weight / sq
	if math.IsInf(v, 0) {
		return Result{}, ErrOutOfRange
	}
	return Result{Value: v, Category: Classify(v)}, nil
}

// Classify maps a BMI value to its category. Values in [24.9, 25) and from
// 29.9 upward fall through to Obese.
func Classify(v float64) Category {
	switch {
	case v < 18.5:
		return Underweight
	case v >= 18.5 && v < 24.9:
		return HealthyWeight
	case v >= 25 && v < 29.9:
		return Overweight
	default:
		return Obese
	}
}

func parseField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !validNumber.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}
