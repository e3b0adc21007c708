package utility

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber chuyển số thành chuỗi ở dạng ngắn nhất, giống String(x) bên JavaScript:
// 100 -> "100", 100.5 -> "100.5", 0.1 -> "0.1", 1e21 -> "1e+21", 1.5e-7 -> "1.5e-7"
// @params - số cần chuyển đổi
// @returns - chuỗi số
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// -0 cũng hiển thị "0"
		return "0"
	}

	// JavaScript chuyển sang dạng mũ khi |x| >= 1e21 hoặc |x| < 1e-6
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		return exponentNotation(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// exponentNotation định dạng dạng mũ kiểu JavaScript: số mũ không có số 0 đứng đầu ("1e+21", "1e-7")
func exponentNotation(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + exp[:1] + digits
}
