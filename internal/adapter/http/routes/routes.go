package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "paydesk/docs" // generated swagger spec
	"paydesk/internal/adapter/http/handlers"
	"paydesk/internal/adapter/ingest"
	"paydesk/internal/adapter/persistence/blob"
	repository "paydesk/internal/adapter/persistence/repository"
	"paydesk/internal/infrastructure/awsconn"
	"paydesk/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run wires the collaborators and starts the server. Persistence handles are
// created here and injected downward; nothing below this layer owns a
// process-wide connection.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := awsconn.ConnectDynamoDB()
	s3c := awsconn.ConnectS3()

	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	evidenceStore := blob.NewEvidenceS3Store(s3c)

	ingestionUseCase := usecase.NewIngestionUseCase(paymentRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, evidenceStore)

	seedFromCSV(ingestionUseCase)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	ingestionHandler := handlers.NewIngestionHandler(ingestionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, ingestionHandler)
}

// seedFromCSV reproduces the legacy startup load: when PAYMENTS_SEED_CSV
// points at a file, its batch is imported before the server accepts traffic.
// Failures are logged and do not stop the process; the import endpoint can
// re-run the batch later.
func seedFromCSV(ingestion usecase.IIngestionUseCase) {
	path := os.Getenv("PAYMENTS_SEED_CSV")
	if path == "" {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("[ingestion][boot] cannot open seed csv path=%s err=%v", path, err)
		return
	}
	defer f.Close()

	raws, err := ingest.ParseCSV(f)
	if err != nil {
		log.Printf("[ingestion][boot] cannot parse seed csv path=%s err=%v", path, err)
		return
	}

	report, err := ingestion.ImportBatch(context.Background(), raws)
	if err != nil {
		log.Printf("[ingestion][boot] seed import failed path=%s err=%v", path, err)
		return
	}
	log.Printf("[ingestion][boot] seed import success path=%s rows_inserted=%d", path, report.RowsInserted)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
