package logic

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cosmind-backend/models"
)

// tokenPackages is the static shop catalog.
var tokenPackages = []models.TokenPackage{
	{ID: "starter", Name: "Starter Pack", Tokens: 10, Price: 9.90, OriginalPrice: 19.90},
	{ID: "mystic", Name: "Mystic Pack", Tokens: 50, Price: 39.90, OriginalPrice: 99.90, Popular: true},
	{ID: "premium", Name: "Premium Pack", Tokens: 150, Price: 99.90, OriginalPrice: 299.90},
}

// PurchaseStore persists purchase records. *dao.PurchaseDAO satisfies it.
type PurchaseStore interface {
	SavePurchase(record *models.PurchaseRecord) error
	ListPurchases(userID uint64) ([]models.PurchaseRecord, error)
}

// PurchaseLogic handles the simulated token shop. Checkout grants tokens
// through the ledger; there is no real payment gateway behind it.
type PurchaseLogic struct {
	purchases PurchaseStore
	ledger    *CreditLedger
	logger    *zap.Logger
}

func NewPurchaseLogic(purchases PurchaseStore, ledger *CreditLedger, logger *zap.Logger) *PurchaseLogic {
	return &PurchaseLogic{
		purchases: purchases,
		ledger:    ledger,
		logger:    logger,
	}
}

// Packages returns the shop catalog.
func (l *PurchaseLogic) Packages() []models.TokenPackage {
	return tokenPackages
}

// FindPackage looks up a catalog entry by id.
func (l *PurchaseLogic) FindPackage(packageID string) (*models.TokenPackage, error) {
	for i := range tokenPackages {
		if tokenPackages[i].ID == packageID {
			return &tokenPackages[i], nil
		}
	}
	return nil, models.ErrPackageNotFound
}

// Checkout settles a simulated purchase: grants the package tokens and
// appends the completed purchase record. Returns the record and the new
// balance.
func (l *PurchaseLogic) Checkout(userID uint64, packageID string) (*models.PurchaseRecord, int64, error) {
	pack, err := l.FindPackage(packageID)
	if err != nil {
		return nil, 0, err
	}

	balance, err := l.ledger.Grant(userID, pack.Tokens)
	if err != nil {
		return nil, 0, err
	}

	record := &models.PurchaseRecord{
		ID:        uuid.New(),
		UserID:    userID,
		PackageID: pack.ID,
		Tokens:    pack.Tokens,
		Amount:    pack.Price,
		Status:    models.PurchaseCompleted,
	}
	// Tokens are already granted; a record write failure is logged, not
	// reversed.
	if err := l.purchases.SavePurchase(record); err != nil {
		l.logger.Error("failed to save purchase record",
			zap.Uint64("user_id", userID),
			zap.String("package_id", pack.ID),
			zap.Error(err))
	}

	return record, balance, nil
}

// ListPurchases returns the user's purchase history.
func (l *PurchaseLogic) ListPurchases(userID uint64) ([]models.PurchaseRecord, error) {
	return l.purchases.ListPurchases(userID)
}
