package analysis

// Keyword tables scanned by the AI/crypto extractor. Matching is
// case-insensitive substring search over language names, dependency
// manifests, repository names and descriptions. Presence lowers the keyword
// signal and emits a warning; it never disqualifies a profile on its own.

// Tokens shorter than three characters ("ml", "ai") are excluded: substring
// matching makes them collide with unrelated words like "html".
var aiKeywords = []string{
	"tensorflow", "pytorch", "scikit-learn", "torch", "keras",
	"mxnet", "openai", "transformers", "natural language processing", "nlp",
	"machine learning", "deep learning",
}

var cryptoKeywords = []string{
	"solidity", "web3", "ethers.js", "nft",
	"smart contract", "blockchain", "decentralized", "defi", "dao",
	"cryptocurrency", "bitcoin", "ethereum", "dapp",
}
