//go:build lambda

package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

//go:embed sample_instance.json
var embeddedInstance string

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveRequest struct {
	Instance       json.RawMessage `json:"instance"`
	TimeoutSeconds int             `json:"timeoutSeconds"`
	RandomSeed     int64           `json:"randomSeed"`
}

type solveResponse struct {
	Violations  int     `json:"violations"`
	Cost        float64 `json:"cost"`
	SupplyCost  float64 `json:"supplyCost"`
	OpeningCost int     `json:"openingCost"`
	TimeBestMs  int64   `json:"timeBestMs"`
	Solution    string  `json:"solution"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req solveRequest
	doc := embeddedInstance
	if len(body) > 0 {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errResp(400, "invalid JSON: "+err.Error())
		}
		if len(req.Instance) > 0 {
			doc = string(req.Instance)
		}
	}

	in, err := parseJSONInstance(doc)
	if err != nil {
		return errResp(400, "invalid instance: "+err.Error())
	}

	timeoutSeconds := req.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	seed := req.RandomSeed
	if seed == 0 {
		seed = 1
	}

	cfg := NewConfig(in.Warehouses())
	rng := NewRNG(seed)
	d := NewDriver(in, cfg, rng, time.Duration(timeoutSeconds)*time.Second)
	d.Run()

	sol := d.Best()
	if sol == nil {
		return errResp(500, "no feasible solution found")
	}

	var solBuf strings.Builder
	WriteSolution(&solBuf, in, sol, d.TimeBest().Seconds())

	resp := solveResponse{
		Violations:  sol.ComputeViolations(),
		Cost:        sol.Cost(),
		SupplyCost:  sol.SupplyCostTotal(),
		OpeningCost: sol.OpeningCost(),
		TimeBestMs:  d.TimeBest().Milliseconds(),
		Solution:    solBuf.String(),
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-local" {
		fmt.Fprintln(os.Stderr, "lambda build: use the default entrypoint (no args) to start the Lambda handler")
		os.Exit(1)
	}
	lambda.Start(handler)
}
