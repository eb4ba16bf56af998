package calculator

// CalcRequest is the JSON body for POST /calculator/calculate.
type CalcRequest struct {
	Operator string  `json:"operator"` // "+", "-", "*", "/"
	A        float64 `json:"a"`
	B        float64 `json:"b"`
}

// CalcResponse is the JSON response for POST /calculator/calculate.
type CalcResponse struct {
	Operator string  `json:"operator"`
	A        float64 `json:"a"`
	B        float64 `json:"b"`
	Result   float64 `json:"result"`
}
