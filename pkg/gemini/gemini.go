package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/api/option"

	"VaaniLedger/pkg/nlp"
)

// promptTemplate teaches the model the two output schemas and the core
// Hinglish cues through worked examples. The model must answer with a single
// JSON object and nothing else.
const promptTemplate = `You are a bookkeeping assistant for Indian shopkeepers. Convert Hinglish utterances to JSON.

SCHEMAS:

Transaction (money in/out):
{"kind":"transaction","action":"add_transaction","direction":"in|out","type":"sale|purchase|loan_given|loan_taken|expense|other","party_name":"Name or null","amount":0,"date":"today","notes":"text"}

Query (asking question):
{"kind":"query","action":"query_total_sales|query_total_expenses|query_overall_summary|query_balance","party_name":"Name or null","time_range":"today|yesterday|this_week|this_month|all"}

RULES:
- "in" = money coming to shopkeeper
- "out" = money going from shopkeeper
- "udhar" + "liye" = loan_taken (IN)
- "udhar" + "diya" = loan_given (OUT)
- "bikri/becha/sale" = sale (IN)
- "bill/bhar/payment" = expense (OUT)
- "kharcha/expense" = expense (OUT)
- Extract party name from "X se" (from) or "X ko" (to)
- Output ONLY valid JSON, nothing else

EXAMPLES:

Input: Ramesh se 500 liye udhar
Output: {"kind":"transaction","action":"add_transaction","direction":"in","type":"loan_taken","party_name":"Ramesh","amount":500,"date":"today","notes":"Loan from Ramesh"}

Input: Sunil ko 300 diya udhar
Output: {"kind":"transaction","action":"add_transaction","direction":"out","type":"loan_given","party_name":"Sunil","amount":300,"date":"today","notes":"Loan to Sunil"}

Input: Aaj 2000 ki bikri hui
Output: {"kind":"transaction","action":"add_transaction","direction":"in","type":"sale","party_name":null,"amount":2000,"date":"today","notes":"Daily sales"}

Input: Bijli ka bill 900 bhar diya
Output: {"kind":"transaction","action":"add_transaction","direction":"out","type":"expense","party_name":null,"amount":900,"date":"today","notes":"Electricity bill"}

Input: Aaj ki total bikri kitni hai?
Output: {"kind":"query","action":"query_total_sales","party_name":null,"time_range":"today"}

Input: Ramesh ka balance kitna hai?
Output: {"kind":"query","action":"query_balance","party_name":"Ramesh","time_range":null}

NOW PROCESS:

Input: %s
Output:`

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IGemini interface {
	Classify(ctx context.Context, utterance string) (*nlp.Result, error)
}

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

// Classify sends the few-shot prompt to the model and parses its answer into
// a Result. Any malformed or off-schema answer is returned as an error so the
// caller's fallback chain can take over.
func (g *geminiClient) Classify(ctx context.Context, utterance string) (*nlp.Result, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0.3)

	res, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(promptTemplate, utterance)))
	if err != nil {
		return nil, err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, errors.New("unexpected response format from Gemini API")
	}

	return ParseModelOutput(string(text))
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// ParseModelOutput extracts the JSON object from raw model text, which may be
// wrapped in explanations or code fences, and decodes it into a Result.
func ParseModelOutput(raw string) (*nlp.Result, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return nil, errors.New("no JSON object in model output")
	}
	payload := raw[start : end+1]

	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.UnmarshalFromString(payload, &probe); err != nil {
		return nil, fmt.Errorf("malformed model output: %w", err)
	}

	switch probe.Kind {
	case "transaction":
		var tx nlp.TransactionRecord
		if err := json.UnmarshalFromString(payload, &tx); err != nil {
			return nil, fmt.Errorf("malformed transaction output: %w", err)
		}
		if !validTransaction(&tx) {
			return nil, errors.New("model transaction output is off schema")
		}
		return &nlp.Result{Transaction: &tx}, nil
	case "query":
		var q nlp.QueryRecord
		if err := json.UnmarshalFromString(payload, &q); err != nil {
			return nil, fmt.Errorf("malformed query output: %w", err)
		}
		if !validQuery(&q) {
			return nil, errors.New("model query output is off schema")
		}
		return &nlp.Result{Query: &q}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q in model output", probe.Kind)
	}
}

func validTransaction(tx *nlp.TransactionRecord) bool {
	switch tx.Direction {
	case nlp.DirectionIn, nlp.DirectionOut:
	default:
		return false
	}
	switch tx.Type {
	case nlp.TypeSale, nlp.TypePurchase, nlp.TypeLoanGiven, nlp.TypeLoanTaken, nlp.TypeExpense, nlp.TypeOther:
	default:
		return false
	}
	return tx.Action == "add_transaction" && tx.Amount >= 0
}

func validQuery(q *nlp.QueryRecord) bool {
	switch q.Action {
	case nlp.QueryTotalSales, nlp.QueryTotalExpenses, nlp.QueryOverallSummary, nlp.QueryBalance:
	default:
		return false
	}
	if q.TimeRange != nil {
		switch *q.TimeRange {
		case nlp.RangeToday, nlp.RangeYesterday, nlp.RangeThisWeek, nlp.RangeThisMonth, nlp.RangeAll:
		default:
			return false
		}
	}
	return true
}
