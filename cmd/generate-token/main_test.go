package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const ambaToken = "e1b4f9129edbaa8a30f5b42917d4ffa0f8d3b4b60b72bf8f35043d671502a976"

func TestGenerateWrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"amba"},
		{"amba", "my-secret-key", "extra"},
	} {
		out := &bytes.Buffer{}
		status := generate(args, out)
		assert.Equal(t, 1, status)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestGenerateSuccess(t *testing.T) {
	out := &bytes.Buffer{}
	status := generate([]string{"amba", "my-secret-key"}, out)
	assert.Equal(t, 0, status)
	assert.Contains(t, out.String(), "Tenant: amba\n")
	assert.Contains(t, out.String(), "Token:  "+ambaToken+"\n")
}

func TestGenerateOutputContract(t *testing.T) {
	want := "Tenant: amba\n" +
		"Token:  " + ambaToken + "\n" +
		"\n" +
		"Use in Authorization header:\n" +
		"  Authorization: Bearer " + ambaToken + "\n" +
		"\n" +
		"Example curl command:\n" +
		"  curl -X POST \"http://localhost:8080/logs?tenant=amba\" \\\n" +
		"    -H \"Authorization: Bearer " + ambaToken + "\" \\\n" +
		"    -H \"Content-Type: application/x-ndjson\" \\\n" +
		"    --data-binary @example-log.jsonl\n"

	out := &bytes.Buffer{}
	status := generate([]string{"amba", "my-secret-key"}, out)
	assert.Equal(t, 0, status)
	assert.Equal(t, want, out.String())
}

func TestGenerateEmptyArgsStillSucceed(t *testing.T) {
	out := &bytes.Buffer{}
	status := generate([]string{"", ""}, out)
	assert.Equal(t, 0, status)
	assert.Contains(t, out.String(), "Tenant: \n")
}
