package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// credentials is the register/login payload
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	RateLimited        int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of request the load test issues
type Scenario struct {
	Name   string
	Method string
	Path   string
	Auth   bool
	Body   func(worker, job int) any
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:3000", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	scenarioNames := flag.String("s", "list,elites,slip,heartbeat,login", "Comma-separated scenarios (list, elites, slip, heartbeat, login, generate)")
	flag.Parse()

	all := map[string]Scenario{
		"list":      {Name: "list", Method: http.MethodGet, Path: "/api/predictions"},
		"elites":    {Name: "elites", Method: http.MethodGet, Path: "/api/predictions/elites"},
		"slip":      {Name: "slip", Method: http.MethodGet, Path: "/api/predictions/elites/slip"},
		"heartbeat": {Name: "heartbeat", Method: http.MethodGet, Path: "/api/heartbeat"},
		"login": {Name: "login", Method: http.MethodPost, Path: "/api/auth/login", Body: func(int, int) any {
			return credentials{Email: loadTestEmail, Password: loadTestPassword}
		}},
		"generate": {Name: "generate", Method: http.MethodPost, Path: "/api/predictions/generate", Auth: true, Body: func(int, int) any {
			f := fixtures[rand.Intn(len(fixtures))]
			return map[string]string{"home": f[0], "away": f[1], "league": f[2]}
		}},
	}

	var scenarios []Scenario
	for _, name := range strings.Split(*scenarioNames, ",") {
		if s, ok := all[strings.TrimSpace(name)]; ok {
			scenarios = append(scenarios, s)
		}
	}
	if len(scenarios) == 0 {
		scenarios = []Scenario{all["list"]}
	}

	client := &http.Client{Timeout: 60 * time.Second}

	token, err := obtainToken(client, *baseURL)
	if err != nil {
		fmt.Printf("Could not obtain a session token: %v\n", err)
		return
	}

	fmt.Printf("Load testing %s\n", *baseURL)
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, client, *baseURL, token, *delayMs, scenarios, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			record(stats, result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

const (
	loadTestEmail    = "loadtest@nerdytips.ai"
	loadTestPassword = "load-test-password"
)

var fixtures = [][3]string{
	{"Arsenal", "Man City", "Premier League"},
	{"Real Madrid", "Barcelona", "La Liga"},
	{"Bayern", "Dortmund", "Bundesliga"},
	{"Inter", "Milan", "Serie A"},
}

// obtainToken registers the load test account, logging in when it already exists
func obtainToken(client *http.Client, baseURL string) (string, error) {
	for _, path := range []string{"/api/auth/register", "/api/auth/login"} {
		body, _ := json.Marshal(credentials{Email: loadTestEmail, Password: loadTestPassword})
		resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
		if err != nil {
			return "", err
		}
		var out struct {
			Token string `json:"token"`
		}
		err = json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()
		if err == nil && resp.StatusCode == http.StatusOK && out.Token != "" {
			return out.Token, nil
		}
	}
	return "", fmt.Errorf("register and login both failed")
}

func worker(id int, client *http.Client, baseURL, token string, delayMs int,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		result := TestResult{Scenario: scenario.Name}

		var body io.Reader
		if scenario.Body != nil {
			payload, err := json.Marshal(scenario.Body(id, jobID))
			if err != nil {
				result.Error = err
				results <- result
				continue
			}
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequest(scenario.Method, baseURL+scenario.Path, body)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		if scenario.Auth {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		startTime := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(startTime)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("%s: HTTP status code %d", scenario.Name, resp.StatusCode)
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		results <- result
	}
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ScenarioStats[result.Scenario]++
	if result.Success {
		stats.SuccessfulRequests++
	} else {
		stats.FailedRequests++
		if result.StatusCode == http.StatusTooManyRequests {
			stats.RateLimited++
		}
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		stats.ErrorCounts[errMsg]++
	}

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.TotalResponseTime += result.ResponseTime
	stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
	stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Rate Limited:        %d\n", stats.RateLimited)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful RPS:      %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-12s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
