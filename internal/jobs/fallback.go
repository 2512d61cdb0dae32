package jobs

import "github.com/0xPuncker/job-grid/pkg/types"

// DefaultFallback is the static base list served when no board yields jobs.
func DefaultFallback() []types.JobRecord {
	return []types.JobRecord{
		fallback("Blockchain Developer", "Crypto.com", "$150k-$180k"),
		fallback("Smart Contract Engineer", "Uniswap Labs", "$160k-$200k"),
		fallback("Web3 Product Manager", "Coinbase", "$170k-$210k"),
		fallback("DeFi Protocol Dev", "Aave", "$155k-$195k"),
		fallback("Security Researcher", "Trail of Bits", "$140k-$180k"),
		fallback("Solidity Developer", "OpenZeppelin", "$145k-$185k"),
		fallback("Backend Engineer", "Alchemy", "$140k-$180k"),
		fallback("Frontend Developer", "Metamask", "$145k-$185k"),
		fallback("DevOps Engineer", "Protocol Labs", "$140k-$180k"),
		fallback("Data Scientist", "Chainanalysis", "$135k-$175k"),
		fallback("Rust Developer", "Solana Labs", "$160k-$200k"),
		fallback("ML Engineer", "Chainalysis", "$150k-$190k"),
		fallback("Community Manager", "MakerDAO", "$90k-$130k"),
		fallback("Technical Writer", "Web3 Foundation", "$100k-$140k"),
		fallback("Business Development", "Curve Finance", "$120k-$160k"),
		fallback("Product Designer", "dYdX", "$130k-$170k"),
		fallback("Legal Counsel", "Kraken", "$140k-$180k"),
		fallback("Compliance Officer", "Gemini", "$120k-$160k"),
		fallback("Risk Manager", "Lido DAO", "$130k-$170k"),
		fallback("Quantitative Analyst", "Yearn Finance", "$150k-$190k"),
	}
}

func fallback(title, company, salary string) types.JobRecord {
	return types.NewJobRecord(title, company, salary, types.SourceFallback)
}
