package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/internal/infrastructure/pdf"
	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/facturio/facturio-api/pkg/email"
	"github.com/facturio/facturio-api/pkg/logger"
	"github.com/google/uuid"
)

// PDFService drives the document to PDF pipeline: load, project, render,
// rasterize
type PDFService struct {
	documentRepo repository.DocumentRepository
	renderer     *pdf.Renderer
	rasterizer   pdf.Rasterizer
	emailService *email.EmailService
	log          *logger.Logger
}

// NewPDFService creates a new PDF service
func NewPDFService(
	documentRepo repository.DocumentRepository,
	renderer *pdf.Renderer,
	rasterizer pdf.Rasterizer,
	emailService *email.EmailService,
	log *logger.Logger,
) *PDFService {
	return &PDFService{
		documentRepo: documentRepo,
		renderer:     renderer,
		rasterizer:   rasterizer,
		emailService: emailService,
		log:          log,
	}
}

// GeneratedPDF carries the PDF bytes and the download filename
type GeneratedPDF struct {
	Filename string
	Content  []byte
}

// Generate produces the PDF for a document owned by the user
func (s *PDFService) Generate(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, documentID uuid.UUID, templateName string) (*GeneratedPDF, error) {
	doc, err := s.documentRepo.GetWithRelations(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.UserID != userID || doc.Type != docType {
		return nil, apperror.NewNotFoundError(documentLabel(docType))
	}

	model, err := pdf.Project(doc)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(model, templateName)
	if err != nil {
		s.log.Error().Err(err).Str("document_id", documentID.String()).Msg("template execution failed")
		return nil, apperror.NewRenderError(err)
	}

	content, err := s.rasterizer.Rasterize(ctx, html)
	if err != nil {
		s.log.Error().Err(err).Str("document_id", documentID.String()).Msg("rasterization failed")
		return nil, apperror.NewRenderError(err)
	}

	s.log.Info().
		Str("document_id", documentID.String()).
		Str("type", string(docType)).
		Int("bytes", len(content)).
		Msg("document rendered")

	return &GeneratedPDF{
		Filename: Filename(doc),
		Content:  content,
	}, nil
}

// Send generates the PDF and emails it to the document's client
func (s *PDFService) Send(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, documentID uuid.UUID, templateName string) error {
	doc, err := s.documentRepo.GetWithRelations(ctx, documentID)
	if err != nil {
		return err
	}
	if doc == nil || doc.UserID != userID || doc.Type != docType {
		return apperror.NewNotFoundError(documentLabel(docType))
	}
	if doc.Client == nil || doc.Client.Email == nil || *doc.Client.Email == "" {
		return apperror.NewBadRequestError("Client has no email address")
	}

	generated, err := s.Generate(ctx, userID, docType, documentID, templateName)
	if err != nil {
		return err
	}

	label := "Devis"
	if docType == enum.DocumentTypeInvoice {
		label = "Facture"
	}
	subject := fmt.Sprintf("%s n° %s - %s", label, doc.DisplayNumber(), doc.Company.Name)
	greeting := fmt.Sprintf("Bonjour %s,", doc.Client.DisplayName())
	body := fmt.Sprintf("Veuillez trouver ci-joint votre %s n° %s.", strings.ToLower(label), doc.DisplayNumber())

	err = s.emailService.SendDocument(email.DocumentEmail{
		To:       *doc.Client.Email,
		Subject:  subject,
		Greeting: greeting,
		Body:     body,
		Filename: generated.Filename,
		PDF:      generated.Content,
	})
	if err != nil {
		s.log.Error().Err(err).Str("document_id", documentID.String()).Msg("document email failed")
		return err
	}

	s.log.Info().
		Str("document_id", documentID.String()).
		Str("to", *doc.Client.Email).
		Msg("document emailed")
	return nil
}

// Filename builds the download filename for a document
func Filename(doc *entity.Document) string {
	prefix := "devis"
	if doc.Type == enum.DocumentTypeInvoice {
		prefix = "facture"
	}
	number := doc.DisplayNumber()
	number = strings.ReplaceAll(number, "/", "-")
	number = strings.ReplaceAll(number, " ", "_")
	return fmt.Sprintf("%s_%s.pdf", prefix, number)
}
