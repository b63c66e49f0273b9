// Package seed holds the starter library applied on first run.
package seed

import "github.com/lmei/wordflash/internal/models"

// DefaultLibrary returns the grade-3 starter catalog. It is built fresh
// on each call so callers can mutate their copy freely.
func DefaultLibrary() models.Library {
	return models.Library{
		"三年级上册": models.Grade{
			"Unit 1": models.Unit{
				{Word: "name", Meaning: "名字", Pronunciation: "/neɪm/"},
				{Word: "nice", Meaning: "令人愉快的；友好的", Pronunciation: "/naɪs/"},
				{Word: "meet", Meaning: "遇见；会面", Pronunciation: "/miːt/"},
				{Word: "love", Meaning: "爱；喜欢", Pronunciation: "/lʌv/"},
				{Word: "have", Meaning: "有；具有", Pronunciation: "/hæv/"},
				{Word: "arm", Meaning: "胳膊", Pronunciation: "/ɑːm/"},
				{Word: "mum", Meaning: "妈妈（口语）", Pronunciation: "/mʌm/"},
				{Word: "can", Meaning: "能；会", Pronunciation: "/kæn/"},
				{Word: "smile", Meaning: "微笑", Pronunciation: "/smaɪl/"},
				{Word: "listen", Meaning: "听；倾听", Pronunciation: "/ˈlɪsn/"},
				{Word: "then", Meaning: "那么；然后", Pronunciation: "/ðen/"},
				{Word: "say", Meaning: "说；讲", Pronunciation: "/seɪ/"},
				{Word: "and", Meaning: "和；与", Pronunciation: "/ænd/"},
				{Word: "goodbye", Meaning: "再见", Pronunciation: "/ˌɡʊdˈbaɪ/"},
				{Word: "my", Meaning: "我的", Pronunciation: "/maɪ/"},
				{Word: "friend", Meaning: "朋友", Pronunciation: "/frend/"},
				{Word: "good", Meaning: "好的", Pronunciation: "/ɡʊd/"},
			},
			"Unit 2": models.Unit{
				{Word: "mum", Meaning: "妈妈（口语）", Pronunciation: "/mʌm/"},
				{Word: "dad", Meaning: "爸爸（口语）", Pronunciation: "/dæd/"},
				{Word: "grandma", Meaning: "（外）祖母；奶奶；外婆", Pronunciation: "/ˈɡrænmɑː/"},
				{Word: "grandpa", Meaning: "（外）祖父；爷爷；外公", Pronunciation: "/ˈɡrænpɑː/"},
				{Word: "grandfather", Meaning: "（外）祖父", Pronunciation: "/ˈɡrænfɑːðə/"},
				{Word: "grandmother", Meaning: "（外）祖母", Pronunciation: "/ˈɡrænmʌðə/"},
				{Word: "fish", Meaning: "鱼；鱼肉", Pronunciation: "/fɪʃ/"},
				{Word: "bird", Meaning: "鸟", Pronunciation: "/bɜːd/"},
				{Word: "dog", Meaning: "狗", Pronunciation: "/dɒɡ/"},
				{Word: "rabbit", Meaning: "兔", Pronunciation: "/ˈræbɪt/"},
				{Word: "zoo", Meaning: "动物园", Pronunciation: "/zuː/"},
				{Word: "fox", Meaning: "狐狸", Pronunciation: "/fɒks/"},
				{Word: "mother", Meaning: "母亲；妈妈", Pronunciation: "/ˈmʌðə/"},
				{Word: "father", Meaning: "父亲；爸爸", Pronunciation: "/ˈfɑːðə/"},
			},
			"Unit 3": models.Unit{
				{Word: "like", Meaning: "喜欢", Pronunciation: "/laɪk/"},
				{Word: "dog", Meaning: "狗", Pronunciation: "/dɒɡ/"},
				{Word: "cat", Meaning: "猫", Pronunciation: "/kæt/"},
				{Word: "pet", Meaning: "宠物", Pronunciation: "/pet/"},
				{Word: "bird", Meaning: "鸟", Pronunciation: "/bɜːd/"},
				{Word: "fish", Meaning: "鱼；鱼肉", Pronunciation: "/fɪʃ/"},
				{Word: "rabbit", Meaning: "兔", Pronunciation: "/ˈræbɪt/"},
				{Word: "tiger", Meaning: "老虎", Pronunciation: "/ˈtaɪɡə/"},
				{Word: "panda", Meaning: "大熊猫", Pronunciation: "/ˈpændə/"},
				{Word: "elephant", Meaning: "大象", Pronunciation: "/ˈelɪfənt/"},
				{Word: "lion", Meaning: "狮子", Pronunciation: "/ˈlaɪən/"},
				{Word: "cute", Meaning: "可爱的", Pronunciation: "/kjuːt/"},
				{Word: "monkey", Meaning: "猴子", Pronunciation: "/ˈmʌŋki/"},
			},
		},
	}
}
