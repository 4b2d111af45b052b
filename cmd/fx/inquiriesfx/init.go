package inquiriesfx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

var Module = fx.Provide(
	provideInquiryRepo, provideExtractor, provideInquiryService)

func provideInquiryRepo(db *gorm.DB) repositories.InquiryRepository {
	return repositories.NewInquiryRepository(db)
}

func provideExtractor() utils.InquiryExtractorInterface {
	extractor, err := utils.NewGeminiInquiryExtractor(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create inquiry extractor: %v", err)
	}
	return extractor
}

func provideInquiryService(
	inquiryRepo repositories.InquiryRepository,
	extractor utils.InquiryExtractorInterface,
) services.InquiryServiceInterface {
	return services.NewInquiryService(inquiryRepo, extractor)
}
