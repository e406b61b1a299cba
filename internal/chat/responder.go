package chat

import "strings"

// Responder maps user input to an assistant reply. Implementations must be
// deterministic: the same input text always yields the same reply.
type Responder interface {
	Reply(userText string) string
}

// MockResponder is a keyword-matched canned-response advisor. Rules are
// checked in order and the first match wins, so the mapping is stable.
type MockResponder struct{}

// cannedRule pairs trigger keywords with a reply.
type cannedRule struct {
	keywords []string
	reply    string
}

var cannedRules = []cannedRule{
	{
		keywords: []string{"面接対策", "面接"},
		reply: "面接対策のポイントをまとめますね。\n\n**1. 企業研究を深める**\n事業内容・強み・最近のニュースを押さえ、「なぜこの会社か」を自分の言葉で話せるようにしましょう。\n\n**2. 想定質問への準備**\n自己紹介・ガクチカ・志望動機は必ず聞かれます。結論から話す練習をしておくと安心です。\n\n**3. 模擬面接**\n声に出して練習すると本番の緊張がかなり減ります。",
	},
	{
		keywords: []string{"自己PR", "自己pr"},
		reply: "自己PRは次の構成が伝わりやすいです。\n\n**結論 → 根拠エピソード → 成果 → 仕事への活かし方**\n\nエピソードは1つに絞り、数字で成果を示せるとより説得力が出ます。強みは応募先の求める人物像に寄せて選びましょう。",
	},
	{
		keywords: []string{"逆質問"},
		reply: "逆質問のおすすめをいくつか挙げます。\n\n**・入社までに勉強しておくべきことはありますか？**\n**・活躍している方に共通する特徴はありますか？**\n**・チームの雰囲気や働き方を教えてください**\n\n調べれば分かることや待遇の話だけになるのは避け、意欲が伝わる質問を2〜3個用意しておきましょう。",
	},
	{
		keywords: []string{"志望動機"},
		reply: "志望動機は **「なぜこの業界か」→「なぜこの会社か」→「入社後に何をしたいか」** の順で組み立てると筋が通ります。\n\n自分の経験と企業の事業・価値観との接点を具体的に示すのがポイントです。他社にも当てはまる内容になっていないか見直してみてください。",
	},
	{
		keywords: []string{"ES", "エントリーシート"},
		reply: "エントリーシートで意識したいのは次の3点です。\n\n**1. 設問の意図に正面から答える**\n**2. 結論ファーストで書く**\n**3. 具体的なエピソードで裏付ける**\n\n書き上げたら一晩おいて読み返すと、伝わりにくい箇所に気づきやすいですよ。",
	},
}

// defaultReply is returned when no keyword matches.
const defaultReply = "ご相談ありがとうございます。\n\n就活のことなら、例えば **「面接対策」「自己PR」「志望動機」「逆質問」「エントリーシート」** などのキーワードで聞いてもらえると、具体的なアドバイスができます。\n\n選考状況を企業一覧に登録しておくと、面接日程のリマインドもお手伝いできますよ。"

// Reply returns the canned reply for the first matching keyword rule,
// or the default reply when nothing matches.
func (MockResponder) Reply(userText string) string {
	for _, rule := range cannedRules {
		for _, kw := range rule.keywords {
			if strings.Contains(userText, kw) {
				return rule.reply
			}
		}
	}
	return defaultReply
}
