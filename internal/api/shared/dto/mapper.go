package dto

import (
	"github.com/feral-file/ff-token-sale/internal/price"
	"github.com/feral-file/ff-token-sale/internal/store"
	"github.com/feral-file/ff-token-sale/internal/store/schema"
)

// MapPurchaseToDTO maps a ledger row to its API representation
func MapPurchaseToDTO(p *schema.Purchase) *PurchaseResponse {
	if p == nil {
		return nil
	}

	return &PurchaseResponse{
		ID:               p.ID.String(),
		TxHash:           p.TxHash,
		Chain:            p.Chain,
		BuyerAddress:     p.BuyerAddress,
		RoundNumber:      p.RoundNumber,
		AmountSentEth:    p.AmountSentEth,
		AmountClaimedUSD: p.AmountClaimedUSD,
		AmountSentUSD:    p.AmountSentUSD,
		EthPriceUSD:      p.EthPriceUSD,
		PriceSource:      p.PriceSource,
		PriceEstimated:   p.PriceEstimated,
		TokensPurchased:  p.TokensPurchased,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		VerifiedAt:       p.VerifiedAt,
	}
}

// MapRoundToDTO maps a round row to its API representation
func MapRoundToDTO(r *schema.Round) *RoundResponse {
	if r == nil {
		return nil
	}

	return &RoundResponse{
		RoundNumber:     r.RoundNumber,
		PriceUSD:        r.PriceUSD,
		TotalTokens:     r.TotalTokens,
		SoldTokens:      r.SoldTokens,
		RemainingTokens: r.RemainingTokens(),
		Status:          r.Status,
		Bonus:           r.Bonus,
		EndDate:         r.EndDate,
	}
}

func MapSaleStatusToDTO(s *store.SaleStatus) *SaleResponse {
	if s == nil {
		return nil
	}

	return &SaleResponse{
		Finished:               s.Finished,
		FinishedAt:             s.FinishedAt,
		TotalRaisedUSD:         s.TotalRaisedUSD,
		ComputedTotalRaisedUSD: s.ComputedTotalRaisedUSD,
		ManualTotalRaisedUSD:   s.ManualTotalRaisedUSD,
		UseManualTotal:         s.UseManualTotal,
		TotalTokensSold:        s.TotalTokensSold,
		VerifiedPurchases:      s.VerifiedPurchases,
		ActiveRounds:           s.ActiveRounds,
	}
}

func MapQuoteToDTO(q price.Quote) *PriceResponse {
	return &PriceResponse{
		EthUSD:    q.Price,
		Source:    q.Source,
		Provider:  q.Provider,
		Estimated: q.Estimated,
		FetchedAt: q.FetchedAt,
	}
}
