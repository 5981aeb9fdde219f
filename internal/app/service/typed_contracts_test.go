package service

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisdiction_gateway/internal/domain/entity"
)

func sampleRule() entity.Rule {
	var about [32]byte
	copy(about[:], "harass")
	return entity.Rule{
		About:    about,
		Affected: "investor",
		Negation: false,
		Uri:      "ipfs://QmRule",
		Effects:  entity.RuleEffects{Environmental: 0, Personal: -2, Professional: -5, Social: 1},
	}
}

func TestCaseContractCalls(t *testing.T) {
	binder := newFakeBinder()
	binder.values["stage"] = []any{uint8(2)}
	cases := NewCaseContract(NewContractGateway("1337", binder), staticDescriptors{})
	ctx := context.Background()

	_, err := cases.AddPost(ctx, netCtx("1337"), caseAddress, entity.CaseRolePlaintiff, "ipfs://QmPost")
	require.NoError(t, err)
	_, err = cases.SetStageOpen(ctx, netCtx("1337"), caseAddress)
	require.NoError(t, err)
	_, err = cases.SetStageVerdict(ctx, netCtx("1337"), caseAddress)
	require.NoError(t, err)
	_, err = cases.SetStageClosed(ctx, netCtx("1337"), caseAddress, "ipfs://QmVerdict")
	require.NoError(t, err)
	stage, err := cases.Stage(ctx, netCtx("1"), caseAddress)
	require.NoError(t, err)
	assert.Equal(t, entity.CaseStageVerdict, stage)

	assert.Equal(t, []recordedCall{
		{Method: "post", Args: []any{entity.CaseRolePlaintiff, "ipfs://QmPost"}, Mutating: true},
		{Method: "stageFile", Mutating: true},
		{Method: "stageWaitForVerdict", Mutating: true},
		{Method: "stageVerdict", Args: []any{"ipfs://QmVerdict"}, Mutating: true},
		{Method: "stage"},
	}, normalize(binder.recorded()))
}

func TestCaseContractValidation(t *testing.T) {
	binder := newFakeBinder()
	cases := NewCaseContract(NewContractGateway("1337", binder), staticDescriptors{})

	_, err := cases.AddPost(context.Background(), netCtx("1337"), caseAddress, entity.CaseRoleAdmin, " ")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, err = cases.AddPost(context.Background(), netCtx("1337"), caseAddress, "", "ipfs://x")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, err = cases.SetStageClosed(context.Background(), netCtx("1337"), caseAddress, "")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	assert.Empty(t, binder.recorded())
}

func TestCaseContractOnWrongNetwork(t *testing.T) {
	binder := newFakeBinder()
	cases := NewCaseContract(NewContractGateway("1337", binder), staticDescriptors{})

	_, err := cases.SetStageOpen(context.Background(), netCtx("80001"), caseAddress)
	assert.ErrorIs(t, err, entity.ErrWrongNetwork)
	assert.Empty(t, binder.recorded())
}

func TestJurisdictionContractCalls(t *testing.T) {
	binder := newFakeBinder()
	rule := sampleRule()
	// Shape produced by the abi decoder for the rule tuple.
	binder.values["ruleGet"] = []any{struct {
		About    [32]uint8 `json:"about"`
		Affected string    `json:"affected"`
		Negation bool      `json:"negation"`
		Uri      string    `json:"uri"`
		Effects  struct {
			Environmental int8 `json:"environmental"`
			Personal      int8 `json:"personal"`
			Professional  int8 `json:"professional"`
			Social        int8 `json:"social"`
		} `json:"effects"`
	}{About: rule.About, Affected: rule.Affected, Uri: rule.Uri}}

	jurisdictions := NewJurisdictionContract(NewContractGateway("1337", binder), staticDescriptors{})
	ctx := context.Background()

	_, err := jurisdictions.AddRule(ctx, netCtx("1337"), jurisdictionAddress, rule, entity.DefaultConfirmation())
	require.NoError(t, err)
	_, err = jurisdictions.UpdateRule(ctx, netCtx("1337"), jurisdictionAddress, "3", rule)
	require.NoError(t, err)
	got, err := jurisdictions.GetRule(ctx, netCtx("1337"), jurisdictionAddress, "0x3")
	require.NoError(t, err)
	assert.Equal(t, rule.About, got.About)
	assert.Equal(t, "investor", got.Affected)
	assert.Equal(t, "ipfs://QmRule", got.Uri)

	calls := binder.recorded()
	require.Len(t, calls, 3)
	assert.Equal(t, "ruleAdd", calls[0].Method)
	assert.Equal(t, []any{rule, entity.DefaultConfirmation()}, calls[0].Args)
	assert.Equal(t, "ruleUpdate", calls[1].Method)
	assert.Equal(t, big.NewInt(3), calls[1].Args[0])
	assert.Equal(t, "ruleGet", calls[2].Method)
	assert.False(t, calls[2].Mutating)
}

func TestJurisdictionRuleArgumentsPack(t *testing.T) {
	parsed := descriptorFor("Jurisdiction", jurisdictionAddress).ABI

	_, err := parsed.Pack("ruleAdd", sampleRule(), entity.DefaultConfirmation())
	require.NoError(t, err)
	_, err = parsed.Pack("ruleUpdate", big.NewInt(1), sampleRule())
	require.NoError(t, err)
}

func TestJurisdictionRejectsBadRuleID(t *testing.T) {
	binder := newFakeBinder()
	jurisdictions := NewJurisdictionContract(NewContractGateway("1337", binder), staticDescriptors{})

	_, err := jurisdictions.GetRule(context.Background(), netCtx("1337"), jurisdictionAddress, "first")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, err = jurisdictions.UpdateRule(context.Background(), netCtx("1337"), jurisdictionAddress, "-1", sampleRule())
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	assert.Empty(t, binder.recorded())
}

func TestAvatarNFTContractCalls(t *testing.T) {
	binder := newFakeBinder()
	binder.values["getRepForDomain"] = []any{big.NewInt(7)}
	avatars := NewAvatarNFTContract(NewContractGateway("1337", binder), staticDescriptors{}, avatarAddress)
	ctx := context.Background()

	_, err := avatars.AddReputation(ctx, netCtx("1337"), "12", "Professional", entity.ReputationPositive, 0)
	require.NoError(t, err)
	score, err := avatars.Reputation(ctx, netCtx("1337"), "12", "social", entity.ReputationNegative)
	require.NoError(t, err)
	assert.Equal(t, int64(7), score.Int64())
	assert.Equal(t, avatarAddress, avatars.Address())

	calls := binder.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, recordedCall{
		Method:   "repAdd",
		Args:     []any{big.NewInt(12), "professional", uint8(1), uint8(1)},
		Mutating: true,
	}, calls[0])
	assert.Equal(t, recordedCall{
		Method: "getRepForDomain",
		Args:   []any{big.NewInt(12), "social", uint8(0)},
	}, calls[1])
}

func TestAvatarNFTContractValidation(t *testing.T) {
	binder := newFakeBinder()
	avatars := NewAvatarNFTContract(NewContractGateway("1337", binder), staticDescriptors{}, avatarAddress)
	ctx := context.Background()

	_, err := avatars.AddReputation(ctx, netCtx("1337"), "1", "karma", entity.ReputationPositive, 1)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, err = avatars.AddReputation(ctx, netCtx("1337"), "1", "social", entity.ReputationRating(2), 1)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, err = avatars.Reputation(ctx, netCtx("1337"), "one", "social", entity.ReputationPositive)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	assert.Empty(t, binder.recorded())
}

// normalize maps empty argument lists to nil.
func normalize(calls []recordedCall) []recordedCall {
	for i := range calls {
		if len(calls[i].Args) == 0 {
			calls[i].Args = nil
		}
	}
	return calls
}
