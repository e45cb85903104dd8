package repository

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type attrValue map[string]any

// fakeDynamo speaks enough of the DynamoDB JSON protocol for the
// expressions the repositories send.
type fakeDynamo struct {
	mu     sync.Mutex
	keys   map[string]string
	tables map[string]map[string]map[string]attrValue
	calls  []string
}

func newFakeDynamo(keys map[string]string) *fakeDynamo {
	return &fakeDynamo{keys: keys, tables: make(map[string]map[string]map[string]attrValue)}
}

type fakeDynamoRequest struct {
	TableName                 string               `json:"TableName"`
	Item                      map[string]attrValue `json:"Item"`
	Key                       map[string]attrValue `json:"Key"`
	ConditionExpression       string               `json:"ConditionExpression"`
	UpdateExpression          string               `json:"UpdateExpression"`
	ExpressionAttributeNames  map[string]string    `json:"ExpressionAttributeNames"`
	ExpressionAttributeValues map[string]attrValue `json:"ExpressionAttributeValues"`
	ReturnValues              string               `json:"ReturnValues"`
}

func (f *fakeDynamo) client(t *testing.T) *dynamodb.Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("test", "test", ""),
		HTTPClient:       srv.Client(),
		RetryMaxAttempts: 1,
	})
}

func (f *fakeDynamo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	op := strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")
	f.calls = append(f.calls, op)
	var req fakeDynamoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.fail(w, "SerializationException", err.Error())
		return
	}
	table := f.tables[req.TableName]
	if table == nil {
		table = make(map[string]map[string]attrValue)
		f.tables[req.TableName] = table
	}

	switch op {
	case "PutItem":
		id := f.keyOf(req.TableName, req.Item)
		if !f.conditionHolds(req, table[id]) {
			f.fail(w, "ConditionalCheckFailedException", "The conditional request failed")
			return
		}
		table[id] = req.Item
		f.reply(w, map[string]any{})
	case "GetItem":
		id := f.keyOf(req.TableName, req.Key)
		if item, ok := table[id]; ok {
			f.reply(w, map[string]any{"Item": item})
			return
		}
		f.reply(w, map[string]any{})
	case "UpdateItem":
		id := f.keyOf(req.TableName, req.Key)
		item := table[id]
		if !f.conditionHolds(req, item) {
			f.fail(w, "ConditionalCheckFailedException", "The conditional request failed")
			return
		}
		if item == nil {
			item = req.Key
		}
		for _, assign := range strings.Split(strings.TrimPrefix(req.UpdateExpression, "SET "), ",") {
			name, value, _ := strings.Cut(assign, "=")
			item[req.ExpressionAttributeNames[strings.TrimSpace(name)]] = req.ExpressionAttributeValues[strings.TrimSpace(value)]
		}
		table[id] = item
		f.reply(w, map[string]any{})
	case "DeleteItem":
		id := f.keyOf(req.TableName, req.Key)
		old, ok := table[id]
		delete(table, id)
		if ok && req.ReturnValues == "ALL_OLD" {
			f.reply(w, map[string]any{"Attributes": old})
			return
		}
		f.reply(w, map[string]any{})
	default:
		f.fail(w, "UnknownOperationException", op)
	}
}

// conditionHolds evaluates the AND-joined clauses the repositories use.
func (f *fakeDynamo) conditionHolds(req fakeDynamoRequest, item map[string]attrValue) bool {
	if req.ConditionExpression == "" {
		return true
	}
	for _, clause := range strings.Split(req.ConditionExpression, " AND ") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.HasPrefix(clause, "attribute_not_exists("):
			if item != nil {
				return false
			}
		case strings.HasPrefix(clause, "attribute_exists("):
			if item == nil {
				return false
			}
		default:
			name, value, _ := strings.Cut(clause, "=")
			attr := req.ExpressionAttributeNames[strings.TrimSpace(name)]
			if item == nil || fmt.Sprint(item[attr]["S"]) != fmt.Sprint(req.ExpressionAttributeValues[strings.TrimSpace(value)]["S"]) {
				return false
			}
		}
	}
	return true
}

func (f *fakeDynamo) keyOf(table string, item map[string]attrValue) string {
	return fmt.Sprint(item[f.keys[table]]["S"])
}

func (f *fakeDynamo) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[table])
}

func (f *fakeDynamo) reply(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeDynamo) fail(w http.ResponseWriter, code, msg string) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"__type":  "com.amazonaws.dynamodb.v20120810#" + code,
		"message": msg,
	})
}
