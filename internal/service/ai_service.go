package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/logger"

	"go.uber.org/zap"
)

const (
	msgDocumentNotFound     = "Document not found"
	msgDocumentFileNotFound = "Document file not found"
	msgEmptyPDFText         = "Unable to extract text from PDF"
)

// AIService exposes the quiz generation pipeline to the HTTP layer.
type AIService interface {
	GenerateFromContent(ctx context.Context, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error)
	GenerateFromDocument(ctx context.Context, documentID string, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error)
}

type aiService struct {
	generator domain.QuizGenerationService
	documents domain.DocumentRepository
	texts     DocumentTextService
	uploadDir string
}

// NewAIService creates a new instance of AIService
func NewAIService(
	generator domain.QuizGenerationService,
	documents domain.DocumentRepository,
	texts DocumentTextService,
	uploadDir string,
) AIService {
	return &aiService{
		generator: generator,
		documents: documents,
		texts:     texts,
		uploadDir: uploadDir,
	}
}

func (s *aiService) GenerateFromContent(ctx context.Context, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error) {
	return s.generator.Generate(ctx, req.ToGenerationRequest(req.Content))
}

func (s *aiService) GenerateFromDocument(ctx context.Context, documentID string, req dto.AIQuizRequest) (*domain.GeneratedQuiz, error) {
	l := logger.Get()

	doc, err := s.documents.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load document", err)
	}
	if doc == nil || !doc.HasCourse() {
		return nil, domain.NewDocumentNotFoundError(msgDocumentNotFound).WithContext("document_id", documentID)
	}

	path, ok := s.resolveDocumentPath(doc)
	if !ok {
		l.Warn("Document path escapes the upload directory", zap.String("documentID", doc.ID), zap.String("path", doc.Path))
		return nil, domain.NewDocumentNotFoundError(msgDocumentFileNotFound)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, domain.NewDocumentNotFoundError(msgDocumentFileNotFound).WithContext("document_id", doc.ID)
	}

	text, err := s.texts.ExtractText(ctx, doc.ID, path, info.ModTime())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewPDFExtractionError(msgEmptyPDFText, nil)
	}

	if strings.TrimSpace(req.Title) == "" {
		req.Title = doc.Name
	}
	return s.generator.Generate(ctx, req.ToGenerationRequest(text))
}

// resolveDocumentPath returns <uploadDir>/<courseID>/<doc.Path>, refusing
// paths that leave the course directory.
func (s *aiService) resolveDocumentPath(doc *domain.Document) (string, bool) {
	courseDir := filepath.Join(s.uploadDir, doc.CourseID)
	path := filepath.Join(courseDir, doc.Path)
	rel, err := filepath.Rel(courseDir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}
