package textproc

// English stopword list, embedded so tokenization never needs external
// resources. Words shorter than three characters are filtered by length in
// Tokenize and are omitted here.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "any": true, "can": true,
	"had": true, "her": true, "was": true, "one": true, "our": true,
	"out": true, "has": true, "him": true, "his": true, "how": true,
	"its": true, "may": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "who": true, "did": true, "get": true,
	"she": true, "too": true, "use": true, "way": true, "own": true,
	"say": true, "also": true, "been": true, "much": true, "some": true,
	"such": true, "than": true, "that": true, "them": true, "then": true,
	"they": true, "this": true, "very": true, "well": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"with": true, "would": true, "there": true, "their": true, "these": true,
	"those": true, "about": true, "after": true, "again": true, "above": true,
	"below": true, "being": true, "before": true, "between": true,
	"both": true, "during": true, "each": true, "from": true, "further": true,
	"here": true, "into": true, "itself": true, "just": true, "more": true,
	"most": true, "only": true, "other": true, "over": true, "same": true,
	"should": true, "under": true, "until": true, "your": true, "yours": true,
	"have": true, "having": true, "does": true, "doing": true, "will": true,
	"because": true, "against": true, "through": true, "once": true,
	"down": true, "off": true, "few": true, "nor": true, "ours": true,
	"hers": true, "himself": true, "herself": true, "themselves": true,
	"myself": true, "ourselves": true, "yourself": true, "whom": true,
	"why": true, "could": true, "might": true, "must": true, "shall": true,
}
