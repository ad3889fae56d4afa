package main

// Parse a resume file from the command line and print the structured record:
//   go run ./cmd/parsedemo -file testdata/resume.pdf
//   go run ./cmd/parsedemo -file resume.txt -ask "what are her skills?"

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-chat-backend/internal/answers"
	"resume-chat-backend/internal/extract"
	"resume-chat-backend/internal/parsing"
)

func main() {
	filePath := flag.String("file", "", "Path to resume file (pdf, docx, or txt)")
	ask := flag.String("ask", "", "Optional question to answer from the parsed record")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" {
		exitErr("file path is required")
	}

	mimeType, err := mimeFromExt(*filePath)
	if err != nil {
		exitErr(err.Error())
	}

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		exitErr(fmt.Sprintf("read file: %v", err))
	}

	ctx := context.Background()
	text, err := extract.ExtractTextFromBytes(ctx, raw, mimeType, filepath.Base(*filePath))
	if err != nil {
		exitErr(fmt.Sprintf("extract text: %v", err))
	}

	record := parsing.New().Parse(text)
	record.RawText = text

	if strings.TrimSpace(*ask) != "" {
		responder := &answers.Responder{}
		answer, source := responder.Answer(ctx, record, *ask)
		fmt.Printf("[%s] %s\n", source, answer)
		return
	}

	record.RawText = ""
	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("marshal record: %v", err))
	}
	fmt.Println(string(out))
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	case ".txt", ".md", "":
		return "text/plain", nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
