package services_test

import (
	"context"
	"os"
	"strconv"
	"testing"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/config"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories/mock"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/services"

	mockIDGenerator "bitbucket.org/Amartha/go-fp-reconciliation/internal/common/idgenerator/mock"
	mockPublisher "bitbucket.org/Amartha/go-fp-reconciliation/internal/common/publisher/mock"

	xlog "bitbucket.org/Amartha/go-x/log"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository        *mock.MockSQLRepository
	mockStatementRepository  *mock.MockStatementRepository
	mockReconRepository      *mock.MockReconciliationRepository
	mockMatchRepository      *mock.MockMatchRepository
	mockAdjustmentRepository *mock.MockAdjustmentRepository
	mockJournalRepository    *mock.MockJournalRepository
	mockAccountRepository    *mock.MockAccountRepository
	mockSourceRepository     *mock.MockSourceRepository
	mockEventPublisher       *mockPublisher.MockPublisher
	mockIDGenerator          *mockIDGenerator.MockGenerator

	statementService      services.StatementService
	reconciliationService services.ReconciliationService
	matchingService       services.MatchingService
	adjustmentService     services.AdjustmentService
	summaryService        services.SummaryService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockStatementRepository := mock.NewMockStatementRepository(mockCtrl)
	mockReconRepository := mock.NewMockReconciliationRepository(mockCtrl)
	mockMatchRepository := mock.NewMockMatchRepository(mockCtrl)
	mockAdjustmentRepository := mock.NewMockAdjustmentRepository(mockCtrl)
	mockJournalRepository := mock.NewMockJournalRepository(mockCtrl)
	mockAccountRepository := mock.NewMockAccountRepository(mockCtrl)
	mockSourceRepository := mock.NewMockSourceRepository(mockCtrl)
	mockEventPublisher := mockPublisher.NewMockPublisher(mockCtrl)
	mockIDGenerator := mockIDGenerator.NewMockGenerator(mockCtrl)

	mockSQLRepository.EXPECT().GetStatementRepository().Return(mockStatementRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetReconciliationRepository().Return(mockReconRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetMatchRepository().Return(mockMatchRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetAdjustmentRepository().Return(mockAdjustmentRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetJournalRepository().Return(mockJournalRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetAccountRepository().Return(mockAccountRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetSourceRepository().Return(mockSourceRepository).AnyTimes()

	seq := 0
	mockIDGenerator.EXPECT().Generate(gomock.Any()).DoAndReturn(func(prefixes ...string) string {
		seq++
		prefix := "id"
		if len(prefixes) > 0 {
			prefix = prefixes[0]
		}
		return prefix + "-" + strconv.Itoa(seq)
	}).AnyTimes()

	mockEventPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	conf := config.Config{
		Matching: config.MatchingConfig{
			DateToleranceDays:         7,
			HighConfidenceThreshold:   0.9,
			MediumConfidenceThreshold: 0.7,
			LowConfidenceThreshold:    0.5,
		},
		Reconciliation: config.ReconciliationConfig{
			DefaultAccountNumberStart: 5000,
		},
	}

	serv := services.New(conf, mockSQLRepository, mockEventPublisher, mockIDGenerator)

	return testServiceHelper{
		mockCtrl: mockCtrl,
		config:   conf,

		mockSQLRepository:        mockSQLRepository,
		mockStatementRepository:  mockStatementRepository,
		mockReconRepository:      mockReconRepository,
		mockMatchRepository:      mockMatchRepository,
		mockAdjustmentRepository: mockAdjustmentRepository,
		mockJournalRepository:    mockJournalRepository,
		mockAccountRepository:    mockAccountRepository,
		mockSourceRepository:     mockSourceRepository,
		mockEventPublisher:       mockEventPublisher,
		mockIDGenerator:          mockIDGenerator,

		statementService:      serv.Statement,
		reconciliationService: serv.Reconciliation,
		matchingService:       serv.Matching,
		adjustmentService:     serv.Adjustment,
		summaryService:        serv.Summary,
	}
}

// expectAtomic wires Atomic to run its steps against the same mock sub
// repositories the direct calls use.
func (h testServiceHelper) expectAtomic() {
	h.mockSQLRepository.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f func(ctx context.Context, r repositories.SQLRepository) error) error {
			return f(ctx, h.mockSQLRepository)
		})
}
