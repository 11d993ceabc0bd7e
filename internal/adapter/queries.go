package adapter

// GraphQL documents of the virtual cards API. Field selections mirror the
// sealed wire records in the models package.

const sealedAttributeFields = `keyId algorithm plainTextType base64EncodedSealedData`

const sealedTransactionFragment = `
fragment SealedTransaction on SealedTransaction {
  id owner version createdAtEpochMs updatedAtEpochMs sortDateEpochMs
  algorithm keyId cardId sequenceId type
  transactedAtEpochMs settledAtEpochMs
  billedAmount { currency amount }
  transactedAmount { currency amount }
  description declineReason
  detail {
    virtualCardAmount { currency amount }
    markup { percent flat minCharge }
    markupAmount { currency amount }
    fundingSourceAmount { currency amount }
    fundingSourceId description state
  }
}`

const sealedCardFragment = `
fragment SealedCard on SealedCard {
  id owner version createdAtEpochMs updatedAtEpochMs
  algorithm keyId fundingSourceId currency state
  activeToEpochMs cancelledAtEpochMs last4
  cardHolder alias pan csc
  billingAddress { addressLine1 addressLine2 city state postalCode country }
  expiry { mm yyyy }
  lastTransaction { ...SealedTransaction }
  metadata { ` + sealedAttributeFields + ` }
}` + sealedTransactionFragment

const provisionalCardFragment = `
fragment ProvisionalCard on ProvisionalCard {
  id owner version createdAtEpochMs updatedAtEpochMs
  clientRefId provisioningState
  card { ...SealedCard }
}` + sealedCardFragment

const fundingSourceFragment = `
fragment FundingSource on FundingSource {
  __typename
  ... on CreditCardFundingSource {
    id owner version createdAtEpochMs updatedAtEpochMs
    state flags currency last4 network cardType
    transactionVelocity { maximum velocity }
  }
  ... on BankAccountFundingSource {
    id owner version createdAtEpochMs updatedAtEpochMs
    state flags currency last4 bankAccountType
    transactionVelocity { maximum velocity }
    institutionName { ` + sealedAttributeFields + ` }
    institutionLogo { ` + sealedAttributeFields + ` }
  }
}`

const provisionalFundingSourceFragment = `
fragment ProvisionalFundingSource on ProvisionalFundingSource {
  id owner version createdAtEpochMs updatedAtEpochMs
  type state last4 provisioningData
}`

// Operation names.
const (
	OpProvisionVirtualCard           = "ProvisionVirtualCard"
	OpGetProvisionalCard             = "GetProvisionalCard"
	OpListProvisionalCards           = "ListProvisionalCards"
	OpGetCard                        = "GetCard"
	OpListCards                      = "ListCards"
	OpUpdateVirtualCard              = "UpdateVirtualCard"
	OpCancelVirtualCard              = "CancelVirtualCard"
	OpGetTransaction                 = "GetTransaction"
	OpListTransactions               = "ListTransactions"
	OpListTransactionsByCardID       = "ListTransactionsByCardId"
	OpGetFundingSourceClientConfig   = "GetFundingSourceClientConfiguration"
	OpSetupFundingSource             = "SetupFundingSource"
	OpCompleteFundingSource          = "CompleteFundingSource"
	OpRefreshFundingSource           = "RefreshFundingSource"
	OpGetFundingSource               = "GetFundingSource"
	OpListFundingSources             = "ListFundingSources"
	OpCancelFundingSource            = "CancelFundingSource"
	OpGetProvisionalFundingSource    = "GetProvisionalFundingSource"
	OpListProvisionalFundingSources  = "ListProvisionalFundingSources"
	OpCancelProvisionalFundingSource = "CancelProvisionalFundingSource"
)

// Cards.
const (
	ProvisionVirtualCardMutation = `
mutation ProvisionVirtualCard($input: CardProvisionRequest!) {
  cardProvision(input: $input) { ...ProvisionalCard }
}` + provisionalCardFragment

	GetProvisionalCardQuery = `
query GetProvisionalCard($id: ID!) {
  getProvisionalCard(id: $id) { ...ProvisionalCard }
}` + provisionalCardFragment

	ListProvisionalCardsQuery = `
query ListProvisionalCards($limit: Int, $nextToken: String) {
  listProvisionalCards(limit: $limit, nextToken: $nextToken) {
    items { ...ProvisionalCard }
    nextToken
  }
}` + provisionalCardFragment

	GetCardQuery = `
query GetCard($id: ID!) {
  getCard(id: $id) { ...SealedCard }
}` + sealedCardFragment

	ListCardsQuery = `
query ListCards($limit: Int, $nextToken: String) {
  listCards(limit: $limit, nextToken: $nextToken) {
    items { ...SealedCard }
    nextToken
  }
}` + sealedCardFragment

	UpdateVirtualCardMutation = `
mutation UpdateVirtualCard($input: CardUpdateRequest!) {
  updateCard(input: $input) { ...SealedCard }
}` + sealedCardFragment

	CancelVirtualCardMutation = `
mutation CancelVirtualCard($input: CardCancelRequest!) {
  cancelCard(input: $input) { ...SealedCard }
}` + sealedCardFragment
)

// Transactions.
const (
	GetTransactionQuery = `
query GetTransaction($id: ID!) {
  getTransaction(id: $id) { ...SealedTransaction }
}` + sealedTransactionFragment

	ListTransactionsQuery = `
query ListTransactions($limit: Int, $nextToken: String, $dateRange: DateRangeInput, $sortOrder: SortOrder) {
  listTransactions2(limit: $limit, nextToken: $nextToken, dateRange: $dateRange, sortOrder: $sortOrder) {
    items { ...SealedTransaction }
    nextToken
  }
}` + sealedTransactionFragment

	ListTransactionsByCardIDQuery = `
query ListTransactionsByCardId($cardId: ID!, $limit: Int, $nextToken: String, $dateRange: DateRangeInput, $sortOrder: SortOrder) {
  listTransactionsByCardId2(cardId: $cardId, limit: $limit, nextToken: $nextToken, dateRange: $dateRange, sortOrder: $sortOrder) {
    items { ...SealedTransaction }
    nextToken
  }
}` + sealedTransactionFragment
)

// Funding sources.
const (
	GetFundingSourceClientConfigurationQuery = `
query GetFundingSourceClientConfiguration {
  getFundingSourceClientConfiguration { data }
}`

	SetupFundingSourceMutation = `
mutation SetupFundingSource($input: SetupFundingSourceRequest!) {
  setupFundingSource(input: $input) { ...ProvisionalFundingSource }
}` + provisionalFundingSourceFragment

	CompleteFundingSourceMutation = `
mutation CompleteFundingSource($input: CompleteFundingSourceRequest!) {
  completeFundingSource(input: $input) { ...FundingSource }
}` + fundingSourceFragment

	RefreshFundingSourceMutation = `
mutation RefreshFundingSource($input: RefreshFundingSourceRequest!) {
  refreshFundingSource(input: $input) { ...FundingSource }
}` + fundingSourceFragment

	GetFundingSourceQuery = `
query GetFundingSource($id: ID!) {
  getFundingSource(id: $id) { ...FundingSource }
}` + fundingSourceFragment

	ListFundingSourcesQuery = `
query ListFundingSources($limit: Int, $nextToken: String) {
  listFundingSources(limit: $limit, nextToken: $nextToken) {
    items { ...FundingSource }
    nextToken
  }
}` + fundingSourceFragment

	CancelFundingSourceMutation = `
mutation CancelFundingSource($input: IdInput!) {
  cancelFundingSource(input: $input) { ...FundingSource }
}` + fundingSourceFragment

	GetProvisionalFundingSourceQuery = `
query GetProvisionalFundingSource($id: ID!) {
  getProvisionalFundingSource(id: $id) { ...ProvisionalFundingSource }
}` + provisionalFundingSourceFragment

	ListProvisionalFundingSourcesQuery = `
query ListProvisionalFundingSources($limit: Int, $nextToken: String) {
  listProvisionalFundingSources(limit: $limit, nextToken: $nextToken) {
    items { ...ProvisionalFundingSource }
    nextToken
  }
}` + provisionalFundingSourceFragment

	CancelProvisionalFundingSourceMutation = `
mutation CancelProvisionalFundingSource($input: IdInput!) {
  cancelProvisionalFundingSource(input: $input) { ...ProvisionalFundingSource }
}` + provisionalFundingSourceFragment
)
