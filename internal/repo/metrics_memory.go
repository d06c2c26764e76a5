package repo

import "context"

// InMemoryMetricsRepository derives metrics from any pair of repositories by
// reading them in full. It backs the memory and redis stores.
type InMemoryMetricsRepository struct {
	productRepo ProductRepository
	scanRepo    ScanRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(productRepo ProductRepository, scanRepo ScanRepository) {
	i.productRepo = productRepo
	i.scanRepo = scanRepo
}

func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{}

	products, err := i.productRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	scans, err := i.scanRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	m.TotalScans = len(scans)

	counts := make(map[string]int, len(products))
	for _, s := range scans {
		counts[s.QrID]++
	}

	// Ties go to the product created first.
	for _, p := range products {
		n := counts[p.ProductID]
		delete(counts, p.ProductID)
		if n == 0 {
			continue
		}
		if m.MostScannedProduct == nil || n > m.MostScannedProduct.ScanCount {
			m.MostScannedProduct = &MostScannedProduct{ProductID: p.ProductID, Name: p.Name, ScanCount: n}
		}
	}

	for _, n := range counts {
		m.UnmatchedScans += n
	}
	return m, nil
}
